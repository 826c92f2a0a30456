package handlers

import (
	"fmt"
	"net/http"

	request "interior_estimator/internal/adapter/http/dto/request"
	response "interior_estimator/internal/adapter/http/dto/response"
	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) Start(c *gin.Context) {
	session, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardSession(session))
}

func (h *WizardHandler) Get(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, session, err)
}

func (h *WizardHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) ChooseProjectType(c *gin.Context) {
	var payload request.ProjectTypeRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.ChooseProjectType(c.Request.Context(), c.Param("id"), payload.ToProjectType())
	h.respond(c, session, err)
}

func (h *WizardHandler) SelectBhk(c *gin.Context) {
	var payload request.BhkRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SelectBhk(c.Request.Context(), c.Param("id"), payload.ToSelection())
	h.respond(c, session, err)
}

func (h *WizardHandler) SetRoom(c *gin.Context) {
	var payload request.RoomPatchRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SetRoom(c.Request.Context(), c.Param("id"), c.Param("room_key"), payload.ToPatch())
	h.respond(c, session, err)
}

func (h *WizardHandler) RemoveRoom(c *gin.Context) {
	session, err := h.usecase.RemoveRoom(c.Request.Context(), c.Param("id"), c.Param("room_key"))
	h.respond(c, session, err)
}

func (h *WizardHandler) SetProjectDetails(c *gin.Context) {
	var payload request.ProjectDetailsRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SetProjectDetails(c.Request.Context(), c.Param("id"), payload.ToProjectDetails())
	h.respond(c, session, err)
}

func (h *WizardHandler) SelectPackage(c *gin.Context) {
	var payload request.PackageRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SelectPackage(c.Request.Context(), c.Param("id"), payload.Package)
	h.respond(c, session, err)
}

func (h *WizardHandler) SetClientInfo(c *gin.Context) {
	var payload request.ClientInfoRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SetClientInfo(c.Request.Context(), c.Param("id"), payload.ToClientInfo())
	h.respond(c, session, err)
}

func (h *WizardHandler) SetCommercialForm(c *gin.Context) {
	var payload request.CommercialFormRequest
	if !bindJSON(c, &payload) {
		return
	}
	session, err := h.usecase.SetCommercialForm(c.Request.Context(), c.Param("id"), payload.ToCommercialForm())
	h.respond(c, session, err)
}

func (h *WizardHandler) Next(c *gin.Context) {
	session, err := h.usecase.Next(c.Request.Context(), c.Param("id"))
	h.respond(c, session, err)
}

func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	h.respond(c, session, err)
}

func (h *WizardHandler) StartOver(c *gin.Context) {
	session, err := h.usecase.StartOver(c.Request.Context(), c.Param("id"))
	h.respond(c, session, err)
}

// Summary is public and only carries the total.
func (h *WizardHandler) Summary(c *gin.Context) {
	session, err := h.usecase.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSummary(session))
}

// Breakdown returns the itemized estimate. Routed behind authentication.
func (h *WizardHandler) Breakdown(c *gin.Context) {
	session, err := h.usecase.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	w := session.Wizard
	if w.ProjectType == entities.ProjectTypeCommercial {
		c.JSON(http.StatusOK, response.FromCommercialEstimate(*w.Commercials))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(*w.Estimate))
}

// Export streams the itemized estimate as an xlsx workbook.
func (h *WizardHandler) Export(c *gin.Context) {
	session, err := h.usecase.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	data, err := generateEstimateExcel(exportRowsFor(session.Wizard))
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("estimate-%s.xlsx", session.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func exportRowsFor(w *wizard.Wizard) []exportRow {
	if w.ProjectType == entities.ProjectTypeCommercial {
		return commercialExportRows(response.FromCommercialEstimate(*w.Commercials))
	}
	return residentialExportRows(response.FromEstimateResult(*w.Estimate))
}

func (h *WizardHandler) respond(c *gin.Context, session wizard.Session, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSession(session))
}

func (h *WizardHandler) fail(c *gin.Context, err error) {
	appErr := mapWizardError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		appErr := errInvalidPayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}
