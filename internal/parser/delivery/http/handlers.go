package http

import (
	"github.com/gin-gonic/gin"

	"maintenance-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse maintenance request text
// @Description Splits the submitted text into lines and extracts a structured work record from each one.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Request text, one sentence per line"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parser/requests [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseBatch: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}
