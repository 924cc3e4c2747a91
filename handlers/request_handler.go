package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/response"
	"github.com/linskybing/naming-go/services"
	"github.com/linskybing/naming-go/utils"
)

type RequestHandler struct {
	requests *services.RequestService
	claims   *services.ClaimService
	queries  *services.ReviewQueryService
}

func NewRequestHandler(requests *services.RequestService, claims *services.ClaimService, queries *services.ReviewQueryService) *RequestHandler {
	return &RequestHandler{
		requests: requests,
		claims:   claims,
		queries:  queries,
	}
}

// SubmitRequest godoc
// @Summary      Submit a naming request
// @Description  Validate the submitted values against the active (or referenced) form configuration and open a new request in submitted state. The configuration's field definitions are frozen onto the request.
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.SubmitRequestDTO true "Submission"
// @Success      201 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Per-field validation detail"
// @Router       /requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var input dto.SubmitRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.requests.Submit(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: req})
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	req, err := h.requests.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: req})
}

// ListRequests godoc
// @Summary      Query requests for the reviewer dashboard
// @Description  Filter by status, requestor/reviewer name substring and free-text search; paginated, with summary metrics. Default order is newest submissions first.
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        status     query string false "Status filter or 'all'"
// @Param        requestor  query string false "Requestor name substring"
// @Param        reviewer   query string false "Reviewer name substring"
// @Param        search     query string false "Free-text search over title/description/requestor"
// @Param        sort_by    query string false "submittedAt or title"
// @Param        sort_desc  query bool   false "Descending order"
// @Param        page       query int    false "1-based page"
// @Param        page_size  query int    false "Page size"
// @Success      200 {object} response.SuccessResponse
// @Router       /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var input dto.ReviewQueryDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.queries.Query(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: page})
}

// TransitionRequest moves a request along one lifecycle edge. Illegal
// edges come back as 409 with the current and requested statuses.
func (h *RequestHandler) TransitionRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.TransitionRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.requests.Transition(id, input.Status, actor, input.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: req})
}

// ClaimRequest assigns the calling reviewer to an unclaimed request. A
// lost race returns 409 with the winning reviewer.
func (h *RequestHandler) ClaimRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.claims.Claim(id, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: req})
}

func (h *RequestHandler) UnclaimRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	actor, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	req, err := h.claims.Unclaim(id, actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: req})
}

func (h *RequestHandler) GetRequestAudit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	entries, err := h.requests.AuditTrail(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: entries})
}
