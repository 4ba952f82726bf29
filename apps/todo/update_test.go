package todo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpdate_AddTrimsAndClearsInput(t *testing.T) {
	m := New()
	m = Update(SetInput{Text: "  buy milk "}, m)
	m = Update(Add{}, m)

	want := []Item{{ID: 1, Title: "buy milk"}}
	if diff := cmp.Diff(want, m.Items); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
	if m.Input != "" {
		t.Errorf("Expected input cleared, got '%s'", m.Input)
	}
}

func TestUpdate_AddIgnoresBlank(t *testing.T) {
	m := Update(Add{}, Update(SetInput{Text: "   "}, New()))
	if len(m.Items) != 0 {
		t.Errorf("Expected no items, got %v", m.Items)
	}
}

func TestUpdate_DoesNotMutatePreviousModel(t *testing.T) {
	before := New("a", "b")
	after := Update(Toggle{ID: 1}, before)

	if before.Items[0].Done {
		t.Error("Toggle mutated the previous model")
	}
	if !after.Items[0].Done {
		t.Error("Toggle did not apply to the new model")
	}
}

func TestUpdate_ToggleAllDeleteClear(t *testing.T) {
	m := New("a", "b", "c")
	m = Update(ToggleAll{}, m)
	if m.Remaining() != 0 {
		t.Fatalf("Expected all done, %d remaining", m.Remaining())
	}
	m = Update(ToggleAll{}, m)
	if m.Remaining() != 3 {
		t.Fatalf("Expected all open again, %d remaining", m.Remaining())
	}

	m = Update(Toggle{ID: 2}, m)
	m = Update(Delete{ID: 1}, m)
	m = Update(ClearCompleted{}, m)

	want := []Item{{ID: 3, Title: "c"}}
	if diff := cmp.Diff(want, m.Items); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_Visible(t *testing.T) {
	m := Update(Toggle{ID: 2}, New("a", "b"))

	for filter, want := range map[Filter][]string{
		All:       {"a", "b"},
		Active:    {"a"},
		Completed: {"b"},
	} {
		m.Filter = filter
		var got []string
		for _, it := range m.Visible() {
			got = append(got, it.Title)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", filter, diff)
		}
	}
}
