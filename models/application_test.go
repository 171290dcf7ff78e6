package models

import "testing"

func TestCanTransitionHappyPath(t *testing.T) {
	path := []ApplicationStatus{
		StatusPending,
		StatusShortListed,
		StatusInterview,
		StatusOffered,
		StatusOfferAccept,
		StatusDocumentSub,
		StatusBenefits,
		StatusProfile,
		StatusOrientation,
		StatusStartDate,
		StatusHired,
	}
	for i := 0; i < len(path)-1; i++ {
		if !CanTransition(path[i], path[i+1]) {
			t.Errorf("expected %s -> %s to be allowed", path[i], path[i+1])
		}
	}
}

func TestCanTransitionRejection(t *testing.T) {
	for _, from := range []ApplicationStatus{StatusPending, StatusInterview} {
		if !CanTransition(from, StatusRejected) {
			t.Errorf("expected %s -> Rejected to be allowed", from)
		}
	}
	// Rejection is only reachable from the screening stages.
	for _, from := range []ApplicationStatus{
		StatusShortListed, StatusOffered, StatusOfferAccept, StatusDocumentSub,
		StatusBenefits, StatusProfile, StatusOrientation, StatusStartDate,
	} {
		if CanTransition(from, StatusRejected) {
			t.Errorf("expected %s -> Rejected to be forbidden", from)
		}
	}
}

func TestCanTransitionForbidsSkipsAndBackwardEdges(t *testing.T) {
	cases := []struct{ from, to ApplicationStatus }{
		{StatusPending, StatusInterview},
		{StatusPending, StatusHired},
		{StatusShortListed, StatusOffered},
		{StatusInterview, StatusShortListed},
		{StatusDocumentSub, StatusProfile},
		{StatusBenefits, StatusDocumentSub},
		{StatusHired, StatusStartDate},
		{StatusRejected, StatusPending},
	}
	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be forbidden", tc.from, tc.to)
		}
	}
}

func TestTerminalStatusesHaveNoSuccessors(t *testing.T) {
	for _, terminal := range []ApplicationStatus{StatusHired, StatusRejected} {
		if !IsTerminalStatus(terminal) {
			t.Errorf("expected %s to be terminal", terminal)
		}
		for next := range statusSuccessors {
			if CanTransition(terminal, next) {
				t.Errorf("terminal %s must not transition to %s", terminal, next)
			}
		}
	}
}

func TestIsKnownStatus(t *testing.T) {
	if !IsKnownStatus(StatusOfferAccept) {
		t.Error("OfferAccepted should be a known status")
	}
	if IsKnownStatus(ApplicationStatus("Archived")) {
		t.Error("Archived should not be a known status")
	}
}

func TestIsOnboarding(t *testing.T) {
	onboarding := []ApplicationStatus{
		StatusDocumentSub, StatusBenefits, StatusProfile, StatusOrientation, StatusStartDate,
	}
	for _, s := range onboarding {
		if !IsOnboarding(s) {
			t.Errorf("expected %s to be an onboarding sub-stage", s)
		}
	}
	for _, s := range []ApplicationStatus{StatusPending, StatusOffered, StatusHired, StatusRejected} {
		if IsOnboarding(s) {
			t.Errorf("did not expect %s to be an onboarding sub-stage", s)
		}
	}
}

func TestReachedBenefits(t *testing.T) {
	reached := []ApplicationStatus{
		StatusBenefits, StatusProfile, StatusOrientation, StatusStartDate, StatusHired,
	}
	for _, s := range reached {
		if !ReachedBenefits(s) {
			t.Errorf("expected %s to have reached benefits enrollment", s)
		}
	}
	for _, s := range []ApplicationStatus{StatusPending, StatusOffered, StatusDocumentSub, StatusRejected} {
		if ReachedBenefits(s) {
			t.Errorf("did not expect %s to have reached benefits enrollment", s)
		}
	}
}
