package debug

import "testing"

func TestRecorderAddDataAndLine(t *testing.T) {
	r := NewRecorder(64)
	sink := r.ForComponent(ComponentPlant)
	sink.AddData("target", 0.5)
	sink.AddLine("hello")

	entries := r.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != EntryData || entries[0].Key != "target" || entries[0].Value != 0.5 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Kind != EntryLine || entries[1].Text != "hello" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[0].Component != ComponentPlant {
		t.Errorf("expected component tag to carry through, got %v", entries[0].Component)
	}
}

func TestRecorderWrapsRingBuffer(t *testing.T) {
	r := NewRecorder(64)
	sink := r.ForComponent(ComponentTask)
	for i := 0; i < 70; i++ {
		sink.AddData("i", i)
	}
	entries := r.Snapshot()
	if len(entries) != 64 {
		t.Fatalf("expected ring to cap at 64 entries, got %d", len(entries))
	}
	// The oldest surviving entry should be "i" == 6 (70 - 64).
	if entries[0].Value != 6 {
		t.Errorf("expected oldest surviving value 6, got %v", entries[0].Value)
	}
	if entries[len(entries)-1].Value != 69 {
		t.Errorf("expected newest value 69, got %v", entries[len(entries)-1].Value)
	}
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder(64)
	sink := r.ForComponent(ComponentDrive)
	sink.AddLine("x")
	r.Clear()
	if got := r.Snapshot(); len(got) != 0 {
		t.Errorf("expected empty snapshot after Clear, got %d entries", len(got))
	}
}

func TestNilSinkHelpersAreNoops(t *testing.T) {
	// Should not panic.
	AddData(nil, "k", 1)
	AddLine(nil, "line")
}
