package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hrsuite/recruit-go/models"
)

type appJSON struct {
	ID                   uint   `json:"ID"`
	Status               string `json:"status"`
	DocumentsStageStatus string `json:"documents_stage_status"`
	BenefitsStatus       string `json:"benefits_enrollment_status"`
}

type requirementJSON struct {
	ID           uint   `json:"ID"`
	DocumentKey  string `json:"document_key"`
	DocumentName string `json:"document_name"`
	IsRequired   bool   `json:"is_required"`
}

type submissionJSON struct {
	ID     uint   `json:"ID"`
	Status string `json:"status"`
}

type requirementsPage struct {
	Requirements []requirementJSON `json:"requirements"`
	Aggregate    string            `json:"aggregate"`
}

func getRequirements(t *testing.T, token string, appID uint) requirementsPage {
	t.Helper()
	raw := doJSON(t, http.MethodGet, fmt.Sprintf("/applications/%d/requirements", appID), token, nil, http.StatusOK)
	var page requirementsPage
	require.NoError(t, json.Unmarshal(raw, &page))
	return page
}

func advance(t *testing.T, token string, appID uint, target string, expectStatus int) appJSON {
	t.Helper()
	raw := doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/status", appID), token,
		map[string]string{"target": target}, expectStatus)
	var app appJSON
	_ = json.Unmarshal(raw, &app)
	return app
}

// TestApplicantLifecycle walks one application from creation to the profile
// creation hand-off, exercising the document and benefits gates on the way.
func TestApplicantLifecycle(t *testing.T) {
	applicantToken := loginForTests(t, "applicant1", "password123")
	hrToken := loginForTests(t, "hr1", "password123")

	// Applicant opens the application.
	raw := doJSON(t, http.MethodPost, "/applications", applicantToken,
		map[string]string{"posting_ref": "REQ-2026-014"}, http.StatusCreated)
	var app appJSON
	require.NoError(t, json.Unmarshal(raw, &app))
	require.Equal(t, string(models.StatusPending), app.Status)
	appID := app.ID

	// Screening: shortlist, interview, offer.
	app = advance(t, hrToken, appID, string(models.StatusShortListed), http.StatusOK)
	require.Equal(t, string(models.StatusShortListed), app.Status)

	// Skipping straight to an offer is refused.
	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/status", appID), hrToken,
		map[string]string{"target": string(models.StatusOffered)}, http.StatusConflict)

	raw = doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/interview", appID), hrToken,
		map[string]any{
			"scheduled_at": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
			"location":     "HQ",
			"interviewer":  "j.cruz",
			"mode":         "onsite",
		}, http.StatusOK)
	require.NoError(t, json.Unmarshal(raw, &app))
	require.Equal(t, string(models.StatusInterview), app.Status)

	raw = doJSON(t, http.MethodPost, fmt.Sprintf("/applications/%d/offer", appID), hrToken,
		map[string]string{"position": "Staff Nurse II", "salary": "32000 PHP"}, http.StatusOK)
	require.NoError(t, json.Unmarshal(raw, &app))
	require.Equal(t, string(models.StatusOffered), app.Status)

	// Re-sending the offer is refused.
	doJSON(t, http.MethodPost, fmt.Sprintf("/applications/%d/offer", appID), hrToken,
		map[string]string{"position": "Staff Nurse II"}, http.StatusConflict)

	advance(t, hrToken, appID, string(models.StatusOfferAccept), http.StatusOK)
	app = advance(t, hrToken, appID, string(models.StatusDocumentSub), http.StatusOK)
	require.Equal(t, string(models.StatusDocumentSub), app.Status)

	// Entering document submission seeded the built-in requirements.
	page := getRequirements(t, applicantToken, appID)
	require.NotEmpty(t, page.Requirements)
	require.Equal(t, string(models.AggregateIncomplete), page.Aggregate)

	byKey := make(map[string]requirementJSON)
	for _, r := range page.Requirements {
		byKey[r.DocumentKey] = r
	}
	require.Contains(t, byKey, "gov_id")
	require.Contains(t, byKey, "sss")

	// Completing before anything is approved fails and changes nothing.
	doJSON(t, http.MethodPost, fmt.Sprintf("/applications/%d/complete-documents", appID), hrToken,
		nil, http.StatusConflict)
	page = getRequirements(t, applicantToken, appID)
	require.Equal(t, string(models.AggregateIncomplete), page.Aggregate)

	// Upload every requirement; government IDs carry declared numbers.
	identifiers := map[string]string{
		"sss":        "34-1234567-8",
		"tin":        "123-456-789-000",
		"philhealth": "11-22222222-3",
		"pagibig":    "1111-2222-3333",
	}
	submissions := make(map[string]submissionJSON)
	for _, r := range page.Requirements {
		raw := uploadDocument(t, applicantToken, r.ID, r.DocumentKey+".pdf", identifiers[r.DocumentKey], http.StatusCreated)
		var sub submissionJSON
		require.NoError(t, json.Unmarshal(raw, &sub))
		require.Equal(t, string(models.SubmissionPendingReview), sub.Status)
		submissions[r.DocumentKey] = sub
	}

	// A wrong format is rejected up front.
	uploadDocument(t, applicantToken, byKey["gov_id"].ID, "gov_id.exe", "", http.StatusBadRequest)

	// Reject the gov_id scan; reason is mandatory.
	doJSON(t, http.MethodPut, fmt.Sprintf("/submissions/%d/review", submissions["gov_id"].ID), hrToken,
		map[string]string{"decision": "reject"}, http.StatusBadRequest)
	doJSON(t, http.MethodPut, fmt.Sprintf("/submissions/%d/review", submissions["gov_id"].ID), hrToken,
		map[string]string{"decision": "reject", "reason": "blurry scan"}, http.StatusOK)

	// The applicant asks for more time; only one pending ask per requirement.
	raw = doJSON(t, http.MethodPost, "/follow-ups", applicantToken, map[string]any{
		"requirement_id": byKey["gov_id"].ID,
		"message":        "Need two more days for a certified copy.",
	}, http.StatusCreated)
	var followUp struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(raw, &followUp))
	doJSON(t, http.MethodPost, "/follow-ups", applicantToken, map[string]any{
		"requirement_id": byKey["gov_id"].ID,
		"message":        "Asking again.",
	}, http.StatusConflict)

	raw = doJSON(t, http.MethodPut, fmt.Sprintf("/follow-ups/%d/respond", followUp.ID), hrToken,
		map[string]any{
			"decision":       "accept",
			"hr_response":    "Granted.",
			"extension_days": 5,
		}, http.StatusOK)
	var resolved struct {
		Status            string     `json:"status"`
		ExtensionDeadline *time.Time `json:"extension_deadline"`
	}
	require.NoError(t, json.Unmarshal(raw, &resolved))
	require.Equal(t, string(models.FollowUpAccepted), resolved.Status)
	require.NotNil(t, resolved.ExtensionDeadline)

	// Resubmission replaces the rejected scan in place.
	raw = uploadDocument(t, applicantToken, byKey["gov_id"].ID, "gov_id_v2.pdf", "", http.StatusCreated)
	var resubmitted submissionJSON
	require.NoError(t, json.Unmarshal(raw, &resubmitted))
	require.Equal(t, submissions["gov_id"].ID, resubmitted.ID)
	require.Equal(t, string(models.SubmissionPendingReview), resubmitted.Status)

	// Approve everything.
	for _, sub := range submissions {
		doJSON(t, http.MethodPut, fmt.Sprintf("/submissions/%d/review", sub.ID), hrToken,
			map[string]string{"decision": "approve"}, http.StatusOK)
	}
	page = getRequirements(t, applicantToken, appID)
	require.Equal(t, string(models.AggregateApproved), page.Aggregate)

	// Approving twice is refused.
	doJSON(t, http.MethodPut, fmt.Sprintf("/submissions/%d/review", submissions["sss"].ID), hrToken,
		map[string]string{"decision": "approve"}, http.StatusConflict)

	// Close the stage; a second click is a harmless no-op.
	raw = doJSON(t, http.MethodPost, fmt.Sprintf("/applications/%d/complete-documents", appID), hrToken,
		nil, http.StatusOK)
	require.NoError(t, json.Unmarshal(raw, &app))
	require.Equal(t, string(models.StatusBenefits), app.Status)
	require.Equal(t, string(models.DocumentsStageCompleted), app.DocumentsStageStatus)
	doJSON(t, http.MethodPost, fmt.Sprintf("/applications/%d/complete-documents", appID), hrToken,
		nil, http.StatusOK)

	// Late uploads are locked out.
	uploadDocument(t, applicantToken, byKey["gov_id"].ID, "late.pdf", "", http.StatusConflict)

	// Benefits form is pre-populated from the declared identifiers.
	raw = doJSON(t, http.MethodGet, fmt.Sprintf("/applications/%d/benefits", appID), applicantToken,
		nil, http.StatusOK)
	var enrollment struct {
		SSS    string `json:"sss"`
		TIN    string `json:"tin"`
		Status string `json:"enrollment_status"`
	}
	require.NoError(t, json.Unmarshal(raw, &enrollment))
	require.Equal(t, identifiers["sss"], enrollment.SSS)
	require.Equal(t, identifiers["tin"], enrollment.TIN)
	require.Equal(t, string(models.EnrollmentPending), enrollment.Status)

	// Partial save keeps the enrollment open, submit completes and hands off.
	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/benefits", appID), applicantToken,
		map[string]any{"mode": "save", "membership_proof": "proof-obj"}, http.StatusOK)
	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/benefits", appID), applicantToken,
		map[string]any{"mode": "submit"}, http.StatusBadRequest)
	raw = doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/benefits", appID), applicantToken,
		map[string]any{"mode": "submit", "enrollment_date": time.Now().Format(time.RFC3339)}, http.StatusOK)
	require.NoError(t, json.Unmarshal(raw, &enrollment))
	require.Equal(t, string(models.EnrollmentCompleted), enrollment.Status)

	raw = doJSON(t, http.MethodGet, fmt.Sprintf("/applications/%d", appID), applicantToken, nil, http.StatusOK)
	require.NoError(t, json.Unmarshal(raw, &app))
	require.Equal(t, string(models.StatusProfile), app.Status)

	// Re-submit after completion stays completed without error.
	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/benefits", appID), applicantToken,
		map[string]any{"mode": "submit", "enrollment_date": time.Now().Format(time.RFC3339)}, http.StatusOK)

	// The queued profile entry accepts re-edits.
	raw = doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/profile-entry", appID), applicantToken,
		map[string]any{"snapshot": map[string]string{"full_name": "Applicant One"}}, http.StatusOK)
	var entry struct {
		ProfileDataUpdatedAt *time.Time `json:"profile_data_updated_at"`
	}
	require.NoError(t, json.Unmarshal(raw, &entry))
	require.NotNil(t, entry.ProfileDataUpdatedAt)

	// Finish onboarding.
	for _, target := range []models.ApplicationStatus{
		models.StatusOrientation, models.StatusStartDate, models.StatusHired,
	} {
		app = advance(t, hrToken, appID, string(target), http.StatusOK)
	}
	require.Equal(t, string(models.StatusHired), app.Status)

	// Terminal states refuse further movement.
	advance(t, hrToken, appID, string(models.StatusRejected), http.StatusConflict)

	// The event feed saw the lifecycle.
	raw = doJSON(t, http.MethodGet, "/events/recent", hrToken, nil, http.StatusOK)
	var events []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(raw, &events))
	require.NotEmpty(t, events)
	types := make(map[string]bool)
	for _, e := range events {
		types[e.Type] = true
	}
	require.True(t, types[string(models.EventStageAdvanced)])
	require.True(t, types[string(models.EventDocumentReviewed)])
	require.True(t, types[string(models.EventProfileCreationQueue)])
}

// TestApplicantCannotUseStaffEndpoints covers the role gate.
func TestApplicantCannotUseStaffEndpoints(t *testing.T) {
	applicantToken := loginForTests(t, "applicant1", "password123")

	raw := doJSON(t, http.MethodPost, "/applications", applicantToken,
		map[string]string{"posting_ref": "REQ-2026-015"}, http.StatusCreated)
	var app appJSON
	require.NoError(t, json.Unmarshal(raw, &app))

	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/status", app.ID), applicantToken,
		map[string]string{"target": string(models.StatusShortListed)}, http.StatusForbidden)
	doJSON(t, http.MethodGet, "/events/recent", applicantToken, nil, http.StatusForbidden)

	// Another applicant cannot touch this application's benefits form.
	otherToken := loginForTests(t, "applicant2", "password123")
	doJSON(t, http.MethodGet, fmt.Sprintf("/applications/%d/benefits", app.ID), otherToken,
		nil, http.StatusForbidden)
	doJSON(t, http.MethodPut, fmt.Sprintf("/applications/%d/benefits", app.ID), otherToken,
		map[string]string{"mode": "save"}, http.StatusForbidden)
}
