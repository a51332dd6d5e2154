//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/handler/api"
	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/internal/pkg/errs"
	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"
	"equipment-checkout/tests/common/builder"
	"equipment-checkout/tests/common/httptest"
	"equipment-checkout/tests/common/testutil"
	commandsmock "equipment-checkout/tests/mock/commands"
	queriesmock "equipment-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)

	checkouts := api.NewCheckoutHandler(s.mockCommands, s.mockQueries)
	waitlist := api.NewWaitlistHandler(s.mockCommands, s.mockQueries)
	auditLogs := api.NewAuditLogHandler(s.mockQueries)

	s.router.POST("/checkouts", checkouts.Checkout)
	s.router.GET("/checkouts", checkouts.List)
	s.router.GET("/checkouts/:resource_id", checkouts.Get)
	s.router.DELETE("/checkouts/:resource_id", checkouts.Return)
	s.router.GET("/resources", checkouts.ListResources)
	s.router.POST("/waitlist", waitlist.Join)
	s.router.GET("/waitlist", waitlist.List)
	s.router.DELETE("/waitlist/:user_id", waitlist.Leave)
	s.router.GET("/audit-logs", auditLogs.List)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func result(o auditlog.Outcome, logID int64) commands.Result {
	return commands.Result{Outcome: o, Message: o.Message("e1001"), LogID: logID}
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/checkouts"
	reqBody := builder.NewCheckoutBuilder().WithResource(3).BuildRequestDTO()

	s.Run("success: params reach the engine", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), commands.CheckoutParams{
			ResourceID: 3,
			UserID:     "e1001",
			UserName:   "Ada Lovelace",
		}).Return(result(auditlog.CheckoutSucceeded(3), 11)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertOutcome(s.T(), rec, http.StatusCreated, "CHECKOUT_SUCCEEDED", "903")
		s.Equal(int64(11), body.LogID)
		s.Require().NotNil(body.ResourceID)
		s.Equal(3, *body.ResourceID)
		s.Equal("RESOURCE 03 SUCCESSFULLY CHECKED OUT", body.Message)
	})

	s.Run("outcome to status mapping", func() {
		cases := []struct {
			name    string
			outcome auditlog.Outcome
			invalid bool
			status  int
		}{
			{name: "unavailable", outcome: auditlog.CheckoutFailed(3), status: http.StatusConflict},
			{name: "outside the pool", outcome: auditlog.CheckoutFailed(19), invalid: true, status: http.StatusUnprocessableEntity},
			{name: "already holds one", outcome: auditlog.AlreadyCheckedOut(), status: http.StatusConflict},
			{name: "store failure", outcome: auditlog.UnknownError(), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				res := result(tc.outcome, 12)
				res.InvalidInput = tc.invalid
				s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(res).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertOutcome(s.T(), rec, tc.status, tc.outcome.Kind().String(), tc.outcome.Code())
			})
		}
	})

	s.Run("audit failure still reports the outcome", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(result(auditlog.CheckoutSucceeded(3), 0)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertOutcome(s.T(), rec, http.StatusCreated, "CHECKOUT_SUCCEEDED", "903")
		s.Zero(body.LogID)
	})

	s.Run("error: 400 Bad Request on malformed bodies", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing resource_id", mutate: testutil.Field("resource_id", nil)},
			{name: "missing user_id", mutate: testutil.Field("user_id", nil)},
			{name: "empty user_id", mutate: testutil.Field("user_id", "")},
			{name: "resource_id is a string", mutate: testutil.Field("resource_id", "three")},
			{name: "negative resource_id", mutate: testutil.Field("resource_id", -5)},
			{name: "resource_id beyond the code range", mutate: testutil.Field("resource_id", 3000000000)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"resource_id":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestReturn
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestReturn() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Return(gomock.Any(), commands.ReturnParams{ResourceID: 7}).
			Return(result(auditlog.ReturnSucceeded(7), 3)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/checkouts/7", nil)
		httptest.AssertOutcome(s.T(), rec, http.StatusOK, "RETURN_SUCCEEDED", "807")
	})

	s.Run("not checked out", func() {
		s.mockCommands.EXPECT().Return(gomock.Any(), gomock.Any()).
			Return(result(auditlog.ReturnFailedNotCheckedOut(7), 4)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/checkouts/7", nil)
		httptest.AssertOutcome(s.T(), rec, http.StatusConflict, "RETURN_FAILED_NOT_CHECKED_OUT", "607")
	})

	s.Run("invalid out of range result is 422", func() {
		res := result(auditlog.ReturnFailedNotCheckedOut(19), 5)
		res.InvalidInput = true
		s.mockCommands.EXPECT().Return(gomock.Any(), commands.ReturnParams{ResourceID: 19}).Return(res).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/checkouts/19", nil)
		httptest.AssertOutcome(s.T(), rec, http.StatusUnprocessableEntity, "RETURN_FAILED_NOT_CHECKED_OUT", "619")
	})

	s.Run("ids that no code can carry never reach the engine", func() {
		for _, id := range []string{"seven", "0", "-5", "100", "3000000000"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/checkouts/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource id")
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestGet() {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.Run("held", func() {
		s.mockQueries.EXPECT().GetCheckout(gomock.Any(), resource.ID(4)).Return(&queries.CheckoutView{
			ResourceID: 4, UserID: "e1001", UserName: "Ada Lovelace", CheckedOutAt: at,
		}, nil).Times(1)

		var got resdto.CheckoutResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/4", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("e1001", got.UserID)
		s.True(at.Equal(got.CheckedOutAt))
	})

	s.Run("not found", func() {
		cases := []struct {
			name string
			err  error
			msg  string
		}{
			{name: "free resource", err: queries.ErrCheckoutNotFound, msg: "not checked out"},
			{name: "unknown resource", err: errs.Mark(errs.New("outside"), errs.ErrResourceOutOfRange), msg: "Unknown resource"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCheckout(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/4", nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, tc.msg)
			})
		}
	})

	s.Run("store failure", func() {
		s.mockQueries.EXPECT().GetCheckout(gomock.Any(), gomock.Any()).Return(nil, errs.New("boom")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/4", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load checkout")
	})
}

func (s *CheckoutHandlerTestSuite) TestListResources() {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().GetPool(gomock.Any()).Return(&queries.PoolView{
		Capacity: 2,
		Active:   1,
		Resources: []*queries.ResourceView{
			{ID: 1, Code: "01", HolderID: "e1001", HolderName: "Ada Lovelace", CheckedOutAt: &at},
			{ID: 2, Code: "02", Available: true},
		},
	}, nil).Times(1)

	var got resdto.PoolResponse
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal(2, got.Capacity)
	s.Require().Len(got.Resources, 2)
	s.False(got.Resources[0].Available)
	s.True(got.Resources[1].Available)
}

// ================================================================================
// TestWaitlist
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestJoinWaitlist() {
	reqBody := builder.NewWaitlistBuilder().WithAcceptable(2, 5).BuildRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().JoinWaitlist(gomock.Any(), commands.JoinWaitlistParams{
			UserID:                "e2001",
			UserName:              "Grace Hopper",
			AcceptableResourceIDs: []resource.ID{2, 5},
			Phone:                 "(555) 010-2030",
		}).Return(result(auditlog.WaitlistJoined(), 8)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist", reqBody)
		body := httptest.AssertOutcome(s.T(), rec, http.StatusCreated, "WAITLIST_JOIN_SUCCEEDED", "999")
		s.Nil(body.ResourceID)
	})

	s.Run("outcome to status mapping", func() {
		cases := []struct {
			name    string
			outcome auditlog.Outcome
			status  int
		}{
			{name: "invalid phone", outcome: auditlog.InvalidPhone(), status: http.StatusUnprocessableEntity},
			{name: "join failed", outcome: auditlog.WaitlistJoinFailed(), status: http.StatusUnprocessableEntity},
			{name: "resource available", outcome: auditlog.ResourceAvailable(2), status: http.StatusConflict},
			{name: "duplicate", outcome: auditlog.AlreadyOnWaitlist(), status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().JoinWaitlist(gomock.Any(), gomock.Any()).Return(result(tc.outcome, 9)).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist", reqBody)
				httptest.AssertOutcome(s.T(), rec, tc.status, tc.outcome.Kind().String(), tc.outcome.Code())
			})
		}
	})

	s.Run("missing user_id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("user_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist", requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("acceptable id beyond the code range", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("acceptable_resource_ids", []int{2, 100}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/waitlist", requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CheckoutHandlerTestSuite) TestLeaveWaitlist() {
	s.mockCommands.EXPECT().LeaveWaitlist(gomock.Any(), commands.LeaveWaitlistParams{UserID: "e2001"}).
		Return(result(auditlog.WaitlistLeft(), 10)).Times(1)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/waitlist/e2001", nil)
	httptest.AssertOutcome(s.T(), rec, http.StatusOK, "WAITLIST_LEFT", "997")

	s.mockCommands.EXPECT().LeaveWaitlist(gomock.Any(), gomock.Any()).
		Return(result(auditlog.NotOnWaitlist(), 11)).Times(1)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/waitlist/e2001", nil)
	httptest.AssertOutcome(s.T(), rec, http.StatusConflict, "NOT_ON_WAITLIST", "026")
}

// ================================================================================
// TestAuditLogs
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestListAuditLogs() {
	s.Run("query parameters reach the queries", func() {
		n := 4
		s.mockQueries.EXPECT().ListAuditLogs(gomock.Any(), "", int64(10), 2).Return(&queries.AuditLogPage{
			Entries: []*queries.AuditLogView{
				{LogID: 11, Code: "904", Outcome: "CHECKOUT_SUCCEEDED", ResourceID: &n, UserID: "e1001"},
				{LogID: 12, Code: "026", Outcome: "NOT_ON_WAITLIST", UserID: "e1002"},
			},
			NextCursor: queries.EncodeAfterCursor(12),
			HasMore:    true,
		}, nil).Times(1)

		var got resdto.AuditLogPageResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/audit-logs?after_id=10&limit=2", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Entries, 2)
		s.True(got.HasMore)
		s.Equal(queries.EncodeAfterCursor(12), got.NextCursor)
		s.Nil(got.Entries[1].ResourceID)
	})

	s.Run("limit out of bounds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/audit-logs?limit=500", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("invalid cursor", func() {
		s.mockQueries.EXPECT().ListAuditLogs(gomock.Any(), "junk", int64(0), 0).
			Return(nil, errs.Mark(errs.New("bad"), queries.ErrInvalidCursor)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/audit-logs?cursor=junk", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
