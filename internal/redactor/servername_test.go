package redactor

import "testing"

func TestServerNameHostnames(t *testing.T) {
	cases := map[string]string{
		"Server api.example.com responded": "Server  responded",
		"mirror cdn.fastly.net up":         "mirror  up",
		"see wiki.debian.org today":        "see  today",
		"internal host db01 untouched":     "internal host db01 untouched",
		"gov site example.gov kept":        "gov site example.gov kept", // only .com/.net/.org
	}
	for in, want := range cases {
		if got := Apply(in, serverNameRules); got != want {
			t.Fatalf("Apply(%q)=%q want %q", in, got, want)
		}
	}
}

func TestServerNameIPv4(t *testing.T) {
	got := Apply("IP 192.168.1.1 connected", serverNameRules)
	if got != "IP  connected" {
		t.Fatalf("unexpected result: %q", got)
	}
	// Octet range is not validated; the pattern is syntactic only.
	got = Apply("bogus 999.999.999.999 also goes", serverNameRules)
	if got != "bogus  also goes" {
		t.Fatalf("unexpected result: %q", got)
	}
}
