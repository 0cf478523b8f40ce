package projectflow

import (
	"bytes"
	"strings"
	"testing"
)

func sampleProjects() []Project {
	return []Project{
		{
			ID:             "p1",
			Name:           "E-commerce Redesign",
			Client:         "TechCorp Inc.",
			Status:         "Active",
			Color:          "#6366f1",
			Tags:           []string{"web", "design"},
			EstimatedHours: H(80),
			ActualHours:    H(12.5),
			EstimatedCost:  USD(4000),
			ActualCost:     USD(101.99),
			Profit:         USD(3200),
		},
		{ID: "p2", Name: "Brand Refresh", Client: "Acme", Status: "On Hold"},
	}
}

func sampleTasks() []Task {
	due := day("2025-04-20")
	return []Task{
		{
			ID:          "t1",
			ProjectID:   "p1",
			Title:       "Design landing page mockups",
			Description: "Hero, pricing and footer sections",
			Status:      StatusInProgress,
			ActualHours: H(3.5),
			DueDate:     &due,
			Tags:        []string{"design"},
			WorkLogs: []WorkLog{
				{Date: day("2025-04-08"), Hours: H(2)},
				{Date: day("2025-04-09"), Hours: H(1.5)},
			},
		},
		{ID: "t2", ProjectID: "p1", Title: "Set up CI", Status: StatusTodo, WorkLogs: []WorkLog{}},
	}
}

func TestEncodeDecodeProjects(t *testing.T) {
	in := sampleProjects()
	var buf bytes.Buffer
	if err := EncodeProjects(&buf, in); err != nil {
		t.Fatalf("EncodeProjects() unexpected error = %v", err)
	}
	// One JSON object per line.
	if got := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1; got != len(in) {
		t.Errorf("encoded %d lines, want %d", got, len(in))
	}
	out, err := DecodeProjects(&buf)
	if err != nil {
		t.Fatalf("DecodeProjects() unexpected error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d projects, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Errorf("project %d round trip = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestEncodeDecodeTasks(t *testing.T) {
	in := sampleTasks()
	var buf bytes.Buffer
	if err := EncodeTasks(&buf, in); err != nil {
		t.Fatalf("EncodeTasks() unexpected error = %v", err)
	}
	out, err := DecodeTasks(&buf)
	if err != nil {
		t.Fatalf("DecodeTasks() unexpected error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d tasks, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Equal(in[i]) {
			t.Errorf("task %d round trip = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	src := `{"id":"e1","description":"Stock photos","amount":{"amount":49,"currency":"USD"},"date":"2025-04-02"}

{"id":"e2","description":"Coworking desk","amount":{"amount":150,"currency":"USD"},"date":"2025-04-03"}
`
	out, err := DecodeExpenses(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeExpenses() unexpected error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("decoded %d expenses, want 2", len(out))
	}
	if !out[0].Amount.Equal(USD(49)) {
		t.Errorf("amount = %s, want %s", out[0].Amount, USD(49))
	}
}

func TestDecodeReportsLine(t *testing.T) {
	src := "{\"id\":\"p1\",\"name\":\"ok\",\"client\":\"c\"}\nnot json\n"
	_, err := DecodeProjects(strings.NewReader(src))
	if err == nil {
		t.Fatal("DecodeProjects() expected an error on malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}
