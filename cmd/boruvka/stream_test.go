package main

import "testing"

func TestParseEvent_Insert(t *testing.T) {
	ev, ok, err := parseEvent("+ 3 7")
	if err != nil {
		t.Fatalf("parseEvent: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if ev.U != 3 || ev.V != 7 {
		t.Fatalf("parseEvent(\"+ 3 7\") = %+v, want U=3 V=7", ev)
	}
}

func TestParseEvent_Delete(t *testing.T) {
	ev, ok, err := parseEvent("- 1 2")
	if err != nil || !ok {
		t.Fatalf("parseEvent: ev=%+v ok=%v err=%v", ev, ok, err)
	}
	if ev.U != 1 || ev.V != 2 {
		t.Fatalf("parseEvent(\"- 1 2\") = %+v, want U=1 V=2", ev)
	}
}

func TestParseEvent_BlankAndComment(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment"} {
		_, ok, err := parseEvent(line)
		if err != nil {
			t.Fatalf("parseEvent(%q): %v", line, err)
		}
		if ok {
			t.Fatalf("parseEvent(%q) expected ok=false", line)
		}
	}
}

func TestParseEvent_Malformed(t *testing.T) {
	for _, line := range []string{"+ 1", "* 1 2", "+ a b"} {
		if _, _, err := parseEvent(line); err == nil {
			t.Fatalf("parseEvent(%q) expected an error", line)
		}
	}
}
