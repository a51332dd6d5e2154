//go:build e2e

package checkout_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/tests/common/builder"
	"equipment-checkout/tests/common/dbtest"
	"equipment-checkout/tests/common/httptest"
	"equipment-checkout/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutsURL = "/api/checkouts"
	resourcesURL = "/api/resources"
	waitlistURL  = "/api/waitlist"
	auditLogsURL = "/api/audit-logs"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) checkout(resourceID int, userID, userName string) *nethttptest.ResponseRecorder {
	body := builder.NewCheckoutBuilder().WithResource(resourceID).WithUser(userID, userName).BuildRequestDTO()
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutsURL, body)
}

func (s *checkoutSuite) returnResource(resourceID int) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", checkoutsURL, resourceID), nil)
}

func (s *checkoutSuite) TestCheckout() {
	tests := []struct {
		name           string
		setup          func()
		resourceID     int
		userID         string
		userName       string
		expectedStatus int
		outcome        string
		code           string
	}{
		{
			name:           "free resource is checked out",
			resourceID:     5,
			userID:         "e1001",
			userName:       "Ada Lovelace",
			expectedStatus: http.StatusCreated,
			outcome:        "CHECKOUT_SUCCEEDED",
			code:           "905",
		},
		{
			name: "resource held by someone else",
			setup: func() {
				httptest.AssertOutcome(s.T(), s.checkout(5, "e1002", "Alan Turing"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "905")
			},
			resourceID:     5,
			userID:         "e1001",
			userName:       "Ada Lovelace",
			expectedStatus: http.StatusConflict,
			outcome:        "CHECKOUT_FAILED",
			code:           "705",
		},
		{
			name: "user already holds another resource",
			setup: func() {
				httptest.AssertOutcome(s.T(), s.checkout(3, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "903")
			},
			resourceID:     5,
			userID:         "e1001",
			userName:       "Ada Lovelace",
			expectedStatus: http.StatusConflict,
			outcome:        "ALREADY_CHECKED_OUT",
			code:           "004",
		},
		{
			name: "holder asking for a resource outside the pool",
			setup: func() {
				httptest.AssertOutcome(s.T(), s.checkout(3, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "903")
			},
			resourceID:     19,
			userID:         "e1001",
			userName:       "",
			expectedStatus: http.StatusConflict,
			outcome:        "ALREADY_CHECKED_OUT",
			code:           "004",
		},
		{
			name:           "resource outside the pool",
			resourceID:     19,
			userID:         "e1001",
			userName:       "Ada Lovelace",
			expectedStatus: http.StatusUnprocessableEntity,
			outcome:        "CHECKOUT_FAILED",
			code:           "719",
		},
		{
			name:           "missing user name",
			resourceID:     2,
			userID:         "e1001",
			userName:       "",
			expectedStatus: http.StatusUnprocessableEntity,
			outcome:        "CHECKOUT_FAILED",
			code:           "702",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			if tt.setup != nil {
				tt.setup()
			}

			w := s.checkout(tt.resourceID, tt.userID, tt.userName)
			body := httptest.AssertOutcome(t, w, tt.expectedStatus, tt.outcome, tt.code)
			assert.Positive(t, body.LogID, "every request is audited")
		})
	}
}

func (s *checkoutSuite) TestCheckout_MalformedBody() {
	t := s.T()

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, checkoutsURL, `{"resource_id":`)
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")

	n, err := dbtest.CountRows(t.Context(), s.DB, "audit_logs")
	require.NoError(t, err)
	assert.Zero(t, n, "requests rejected before the engine are not audited")
}

func (s *checkoutSuite) TestReturn() {
	s.Run("held resource is returned", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(7, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "907")

		body := httptest.AssertOutcome(t, s.returnResource(7), http.StatusOK, "RETURN_SUCCEEDED", "807")
		assert.Equal(t, "RESOURCE 07 SUCCESSFULLY CHECKED IN", body.Message)

		// the user is free to check out again
		httptest.AssertOutcome(t, s.checkout(8, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "908")
	})

	s.Run("free resource cannot be returned", func() {
		httptest.AssertOutcome(s.T(), s.returnResource(7), http.StatusConflict, "RETURN_FAILED_NOT_CHECKED_OUT", "607")
	})

	s.Run("id outside the pool", func() {
		httptest.AssertOutcome(s.T(), s.returnResource(19), http.StatusUnprocessableEntity, "RETURN_FAILED_NOT_CHECKED_OUT", "619")
	})

	s.Run("ids no code can carry are rejected unaudited", func() {
		t := s.T()
		before, err := dbtest.CountRows(t.Context(), s.DB, "audit_logs")
		require.NoError(t, err)

		for _, id := range []string{"abc", "0", "-5", "3000000000"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodDelete, checkoutsURL+"/"+id, nil)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid resource id")
		}

		after, err := dbtest.CountRows(t.Context(), s.DB, "audit_logs")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func (s *checkoutSuite) TestGetCheckout() {
	s.Run("held resource", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(4, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "904")

		var got resdto.CheckoutResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkoutsURL+"/4", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 4, got.ResourceID)
		assert.Equal(t, "e1001", got.UserID)
		assert.Equal(t, "Ada Lovelace", got.UserName)
	})

	s.Run("free resource", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, checkoutsURL+"/4", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not checked out")
	})

	s.Run("unknown resource", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, checkoutsURL+"/42", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Unknown resource")
	})
}

func (s *checkoutSuite) TestListResources() {
	t := s.T()
	httptest.AssertOutcome(t, s.checkout(2, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "902")

	var pool resdto.PoolResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL, nil)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &pool)

	require.Len(t, pool.Resources, s.Config.Pool.Capacity)
	assert.Equal(t, 1, pool.Active)
	assert.False(t, pool.Resources[1].Available)
	assert.Equal(t, "e1001", pool.Resources[1].HolderID)
	assert.True(t, pool.Resources[0].Available)
}

func (s *checkoutSuite) TestWaitlist() {
	join := func(b *builder.WaitlistBuilder) *nethttptest.ResponseRecorder {
		return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, waitlistURL, b.BuildRequestDTO())
	}

	s.Run("available resource is offered instead", func() {
		b := builder.NewWaitlistBuilder().WithAcceptable(3, 1)
		httptest.AssertOutcome(s.T(), join(b), http.StatusConflict, "RESOURCE_AVAILABLE", "503")
	})

	s.Run("join, duplicate and leave", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(1, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")

		b := builder.NewWaitlistBuilder().WithAcceptable(1)
		body := httptest.AssertOutcome(t, join(b), http.StatusCreated, "WAITLIST_JOIN_SUCCEEDED", "999")
		assert.Equal(t, "USER e2001 ADDED TO THE WAITLIST", body.Message)

		httptest.AssertOutcome(t, join(b), http.StatusConflict, "ALREADY_ON_WAITLIST", "024")

		var entries []resdto.WaitlistEntryResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, waitlistURL, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entries)
		require.Len(t, entries, 1)
		assert.Equal(t, "5550102030", entries[0].Phone)
		assert.Equal(t, []int{1}, entries[0].AcceptableResourceIDs)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, waitlistURL+"/e2001", nil)
		httptest.AssertOutcome(t, w, http.StatusOK, "WAITLIST_LEFT", "997")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, waitlistURL+"/e2001", nil)
		httptest.AssertOutcome(t, w, http.StatusConflict, "NOT_ON_WAITLIST", "026")
	})

	s.Run("invalid phone", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(1, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")

		b := builder.NewWaitlistBuilder().WithAcceptable(1).WithPhone("555-01")
		httptest.AssertOutcome(t, join(b), http.StatusUnprocessableEntity, "INVALID_PHONE", "025")
	})

	s.Run("holder cannot join", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(1, "e2001", "Grace Hopper"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")

		b := builder.NewWaitlistBuilder().WithAcceptable(2)
		httptest.AssertOutcome(t, join(b), http.StatusConflict, "ALREADY_CHECKED_OUT", "004")
	})

	s.Run("checkout consumes the waiting entry", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(1, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")
		httptest.AssertOutcome(t, join(builder.NewWaitlistBuilder().WithAcceptable(1)), http.StatusCreated, "WAITLIST_JOIN_SUCCEEDED", "999")

		httptest.AssertOutcome(t, s.returnResource(1), http.StatusOK, "RETURN_SUCCEEDED", "801")
		httptest.AssertOutcome(t, s.checkout(1, "e2001", "Grace Hopper"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")

		n, err := dbtest.CountRows(t.Context(), s.DB, "waitlist_entries")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

type outcomeResult struct {
	status int
	body   httptest.OutcomeBody
}

// postCheckout is safe to call from many goroutines; it never touches testing.T.
func (s *checkoutSuite) postCheckout(resourceID int, userID, userName string) (outcomeResult, error) {
	payload, err := json.Marshal(builder.NewCheckoutBuilder().WithResource(resourceID).WithUser(userID, userName).BuildRequestDTO())
	if err != nil {
		return outcomeResult{}, err
	}
	req := nethttptest.NewRequest(http.MethodPost, checkoutsURL, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	res := outcomeResult{status: w.Code}
	err = json.Unmarshal(w.Body.Bytes(), &res.body)
	return res, err
}

func (s *checkoutSuite) TestConcurrentCheckout() {
	s.Run("one winner per resource", func() {
		t := s.T()
		const contenders = 12

		results := make([]outcomeResult, contenders)
		errList := make([]error, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errList[i] = s.postCheckout(6, fmt.Sprintf("c%03d", i), fmt.Sprintf("Contender %d", i))
			}(i)
		}
		wg.Wait()

		winners := 0
		for i, r := range results {
			require.NoError(t, errList[i])
			switch r.body.Code {
			case "906":
				winners++
				assert.Equal(t, http.StatusCreated, r.status)
			case "706":
				assert.Equal(t, http.StatusConflict, r.status)
			default:
				t.Errorf("unexpected outcome %s for contender %d", r.body.Code, i)
			}
		}
		assert.Equal(t, 1, winners)

		n, err := dbtest.CountRows(t.Context(), s.DB, "checkouts")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	s.Run("pool fills then rejects", func() {
		t := s.T()
		capacity := s.Config.Pool.Capacity

		results := make([]outcomeResult, capacity)
		errList := make([]error, capacity)
		var wg sync.WaitGroup
		for i := range capacity {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				u := builder.NewCheckoutBuilder().WithUserIndex(i).BuildRequestDTO()
				results[i], errList[i] = s.postCheckout(i+1, u.UserID, u.UserName)
			}(i)
		}
		wg.Wait()

		for i, r := range results {
			require.NoError(t, errList[i])
			assert.Equal(t, http.StatusCreated, r.status, "resource %d", i+1)
		}

		for id := 1; id <= capacity; id++ {
			w := s.checkout(id, "late", "Late Comer")
			httptest.AssertOutcome(t, w, http.StatusConflict, "CHECKOUT_FAILED", fmt.Sprintf("7%02d", id))
		}

		n, err := dbtest.CountRows(t.Context(), s.DB, "checkouts")
		require.NoError(t, err)
		assert.Equal(t, capacity, n)
	})

	s.Run("audit ids are unique and increasing", func() {
		t := s.T()
		const requests = 30

		var wg sync.WaitGroup
		for i := range requests {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = s.postCheckout(i%3+1, fmt.Sprintf("a%03d", i), "Auditor")
			}(i)
		}
		wg.Wait()

		ids, err := dbtest.AuditLogIDs(t.Context(), s.DB)
		require.NoError(t, err)
		require.Len(t, ids, requests)
		for i := 1; i < len(ids); i++ {
			assert.Greater(t, ids[i], ids[i-1])
		}
	})
}

func (s *checkoutSuite) TestAuditLogPaging() {
	s.Run("pages follow the cursor", func() {
		t := s.T()
		httptest.AssertOutcome(t, s.checkout(1, "e1001", "Ada Lovelace"), http.StatusCreated, "CHECKOUT_SUCCEEDED", "901")
		httptest.AssertOutcome(t, s.checkout(1, "e1002", "Alan Turing"), http.StatusConflict, "CHECKOUT_FAILED", "701")
		httptest.AssertOutcome(t, s.returnResource(1), http.StatusOK, "RETURN_SUCCEEDED", "801")

		var first resdto.AuditLogPageResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auditLogsURL+"?limit=2", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Entries, 2)
		assert.True(t, first.HasMore)
		require.NotEmpty(t, first.NextCursor)
		assert.Equal(t, "901", first.Entries[0].Code)
		assert.Equal(t, "e1001", first.Entries[0].UserID)
		assert.Equal(t, "701", first.Entries[1].Code)

		var second resdto.AuditLogPageResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, auditLogsURL+"?limit=2&cursor="+first.NextCursor, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Entries, 1)
		assert.False(t, second.HasMore)
		assert.Equal(t, "801", second.Entries[0].Code)
		assert.Equal(t, "e1001", second.Entries[0].UserID, "returns are attributed to the holder")
	})

	s.Run("bad cursor", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, auditLogsURL+"?cursor=bm90LWEtY3Vyc29y", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cursor")
	})
}
