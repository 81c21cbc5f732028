package wizard

import (
	"testing"
	"time"

	"trusthome_backend/internal/submissions/domain"
	"trusthome_backend/platform/apperr"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func testViewing() domain.Viewing {
	return domain.Viewing{
		Date:     "2025-03-15",
		TimeSlot: domain.SlotMorning,
		Language: domain.LangRussian,
		Guests:   2,
	}
}

func testContact() domain.Contact {
	return domain.Contact{Name: "Anna", Email: "anna@example.com", Phone: "+995555123456"}
}

func TestSingleFlowStartsAtScheduling(t *testing.T) {
	s, err := NewSingle(42, testNow)
	if err != nil {
		t.Fatalf("NewSingle: %v", err)
	}
	if s.State != StateScheduling {
		t.Fatalf("state = %s, want %s", s.State, StateScheduling)
	}

	if err := s.Select([]int64{1}, testNow); err == nil {
		t.Fatal("single flow must not have a selection step")
	}
}

func TestNewSingleRequiresPropertyID(t *testing.T) {
	if _, err := NewSingle(0, testNow); err == nil {
		t.Fatal("expected error for missing property id")
	}
}

func TestGroupFlowRequiresSelectionToAdvance(t *testing.T) {
	s := NewGroup(testNow)
	if s.State != StateSelecting {
		t.Fatalf("state = %s, want %s", s.State, StateSelecting)
	}

	if err := s.Schedule(testViewing(), testNow); err == nil {
		t.Fatal("scheduling must be rejected before a selection is made")
	}

	if err := s.Select(nil, testNow); err == nil {
		t.Fatal("empty selection must be rejected")
	}

	if err := s.Select([]int64{3, 9}, testNow); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if s.State != StateScheduling {
		t.Fatalf("state = %s, want %s", s.State, StateScheduling)
	}
}

func TestSchedulingGuards(t *testing.T) {
	s, _ := NewSingle(42, testNow)

	v := testViewing()
	v.Date = ""
	if err := s.Schedule(v, testNow); err == nil {
		t.Fatal("missing date must be rejected")
	}

	v = testViewing()
	v.Date = "2025-03-01"
	if err := s.Schedule(v, testNow); err == nil {
		t.Fatal("past date must be rejected")
	}

	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if s.State != StateContact {
		t.Fatalf("state = %s, want %s", s.State, StateContact)
	}
}

func TestContactGuards(t *testing.T) {
	s, _ := NewSingle(42, testNow)
	if err := s.SetContact(testContact(), testNow); err == nil {
		t.Fatal("contact before scheduling must be rejected")
	}

	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.SetContact(domain.Contact{Name: "Anna"}, testNow); err == nil {
		t.Fatal("incomplete contact must be rejected")
	}
	if err := s.SetContact(testContact(), testNow); err != nil {
		t.Fatalf("SetContact: %v", err)
	}
}

func TestBackPreservesAccumulatedData(t *testing.T) {
	s := NewGroup(testNow)
	if err := s.Select([]int64{3, 9}, testNow); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if err := s.Back(testNow); err != nil {
		t.Fatalf("Back: %v", err)
	}
	snap := s.Snapshot()
	if snap.State != StateScheduling {
		t.Fatalf("state = %s, want %s", snap.State, StateScheduling)
	}
	if snap.Viewing.Date != "2025-03-15" {
		t.Fatal("back navigation must keep the recorded viewing data")
	}

	if err := s.Back(testNow); err != nil {
		t.Fatalf("Back: %v", err)
	}
	snap = s.Snapshot()
	if snap.State != StateSelecting {
		t.Fatalf("state = %s, want %s", snap.State, StateSelecting)
	}
	if len(snap.PropertyIDs) != 2 {
		t.Fatal("back navigation must keep the selection")
	}

	if err := s.Back(testNow); err == nil {
		t.Fatal("cannot go back from the first step")
	}
}

func TestBackFromSchedulingIsFirstStepForSingle(t *testing.T) {
	s, _ := NewSingle(42, testNow)
	if err := s.Back(testNow); err == nil {
		t.Fatal("single flow cannot go back from scheduling")
	}
}

func TestSubmitFreezesPayload(t *testing.T) {
	s := NewGroup(testNow)
	if _, err := s.Submit(testNow); err == nil {
		t.Fatal("submit before contact must be rejected")
	}

	if err := s.Select([]int64{3, 9}, testNow); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.SetContact(testContact(), testNow); err != nil {
		t.Fatalf("SetContact: %v", err)
	}

	payload, err := s.Submit(testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	group, ok := payload.(domain.GroupBookingRequest)
	if !ok {
		t.Fatalf("payload type = %T, want GroupBookingRequest", payload)
	}
	if len(group.PropertyIDs) != 2 || group.Name != "Anna" {
		t.Fatalf("frozen payload incomplete: %+v", group)
	}

	if _, err := s.Submit(testNow); err == nil {
		t.Fatal("second submit must be rejected")
	} else if apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("expected conflict kind, got %v", apperr.GetKind(err))
	}
	if s.State != StateSubmitting {
		t.Fatalf("state = %s, want %s", s.State, StateSubmitting)
	}

	if err := s.Finish(testNow); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if s.State != StateSubmitted {
		t.Fatalf("state = %s, want %s", s.State, StateSubmitted)
	}
	if _, err := s.Submit(testNow); apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("submit after delivery: kind = %v, want conflict", apperr.GetKind(err))
	}
}

func TestReopenAfterFailedDeliveryKeepsData(t *testing.T) {
	s, _ := NewSingle(42, testNow)
	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.SetContact(testContact(), testNow); err != nil {
		t.Fatalf("SetContact: %v", err)
	}
	if _, err := s.Submit(testNow); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := s.Reopen(testNow); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if s.State != StateContact {
		t.Fatalf("state = %s, want %s", s.State, StateContact)
	}

	payload, err := s.Submit(testNow)
	if err != nil {
		t.Fatalf("resubmit after reopen: %v", err)
	}
	booking, ok := payload.(domain.BookingRequest)
	if !ok {
		t.Fatalf("payload type = %T, want BookingRequest", payload)
	}
	if booking.PropertyID != 42 || booking.Name != "Anna" {
		t.Fatalf("resubmitted payload lost data: %+v", booking)
	}

	if err := s.Reopen(testNow); err == nil {
		t.Fatal("reopen requires a submission in progress")
	}
}

func TestSubmitSingleProducesBookingRequest(t *testing.T) {
	s, _ := NewSingle(42, testNow)
	if err := s.Schedule(testViewing(), testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.SetContact(testContact(), testNow); err != nil {
		t.Fatalf("SetContact: %v", err)
	}

	payload, err := s.Submit(testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	booking, ok := payload.(domain.BookingRequest)
	if !ok {
		t.Fatalf("payload type = %T, want BookingRequest", payload)
	}
	if booking.PropertyID != 42 {
		t.Fatalf("property id = %d, want 42", booking.PropertyID)
	}
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()
	s := NewGroup(testNow)
	st.Put(s)

	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatal("store must return the same session")
	}

	st.Delete(s.ID)
	if _, err := st.Get(s.ID); err == nil {
		t.Fatal("deleted session must not be found")
	}
}

func TestStoreSweepDropsStaleSessions(t *testing.T) {
	st := NewStore()
	stale := NewGroup(testNow)
	fresh := NewGroup(testNow.Add(3 * time.Hour))
	st.Put(stale)
	st.Put(fresh)

	dropped := st.Sweep(testNow.Add(3*time.Hour + time.Minute))
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if _, err := st.Get(stale.ID); err == nil {
		t.Fatal("stale session must be swept")
	}
	if _, err := st.Get(fresh.ID); err != nil {
		t.Fatalf("fresh session must survive: %v", err)
	}
}
