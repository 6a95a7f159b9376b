package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	cases := []struct {
		prefix string
		key    string
		want   string
	}{
		{prefix: "", key: "docs/a.pdf", want: "docs/a.pdf"},
		{prefix: "studyhub", key: "docs/a.pdf", want: "studyhub/docs/a.pdf"},
		{prefix: "/studyhub/", key: "/docs/a.pdf", want: "studyhub/docs/a.pdf"},
		{prefix: "studyhub", key: "", want: "studyhub"},
	}
	for _, tc := range cases {
		if got := applyPrefix(tc.prefix, tc.key); got != tc.want {
			t.Errorf("applyPrefix(%q, %q) = %q, want %q", tc.prefix, tc.key, got, tc.want)
		}
	}
}

func TestPublicURL(t *testing.T) {
	withBase := &Store{bucket: "studyhub-files", region: "ap-southeast-1", publicBaseURL: "https://cdn.studyhub.vn"}
	if got := withBase.PublicURL("docs", "abc.pdf"); got != "https://cdn.studyhub.vn/docs/abc.pdf" {
		t.Fatalf("unexpected url %q", got)
	}

	plain := &Store{bucket: "studyhub-files", region: "ap-southeast-1", prefix: "uploads"}
	want := "https://studyhub-files.s3.ap-southeast-1.amazonaws.com/uploads/qa/abc.jpg"
	if got := plain.PublicURL("qa", "abc.jpg"); got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
