package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
	"github.com/Ahmedfares-dev/darmasr/internal/present/rest/presenter"
	"github.com/Ahmedfares-dev/darmasr/internal/usecase"
)

type Handler struct {
	elections   *usecase.ElectionUsecase
	nominations *usecase.NominationUsecase
	votes       *usecase.VoteUsecase
	tally       *usecase.TallyUsecase
	winners     *usecase.WinnerUsecase
	directory   *usecase.DirectoryUsecase
}

func NewHandler(
	elections *usecase.ElectionUsecase,
	nominations *usecase.NominationUsecase,
	votes *usecase.VoteUsecase,
	tally *usecase.TallyUsecase,
	winners *usecase.WinnerUsecase,
	directory *usecase.DirectoryUsecase,
) *Handler {
	return &Handler{
		elections:   elections,
		nominations: nominations,
		votes:       votes,
		tally:       tally,
		winners:     winners,
		directory:   directory,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/buildings", h.handleListBuildings)
	api.GET("/buildings/:id", h.handleGetBuilding)
	api.POST("/buildings/seed", h.handleSeedBuildings)

	api.GET("/residents", h.handleListResidents)
	api.GET("/residents/:id", h.handleGetResident)

	api.GET("/elections", h.handleListElections)
	api.POST("/elections", h.handleCreateElection)
	api.GET("/elections/:id", h.handleGetElection)
	api.DELETE("/elections/:id", h.handleDeleteElection)
	api.POST("/elections/:id/tally", h.handleTallyElection)
	api.GET("/elections/:id/votes/count", h.handleVoteCounts)

	api.GET("/nominations", h.handleListNominations)
	api.POST("/nominations", h.handleSubmitNomination)
	api.GET("/nominations/:id", h.handleGetNomination)
	api.POST("/nominations/:id/approve", h.handleApproveNomination)
	api.POST("/nominations/:id/reject", h.handleRejectNomination)
	api.DELETE("/nominations/:id", h.handleDeleteNomination)

	api.GET("/votes", h.handleListVotes)
	api.POST("/votes", h.handleCastVote)
	api.GET("/votes/:id", h.handleGetVote)
	api.DELETE("/votes/:id", h.handleDeleteVote)

	api.GET("/winners", h.handleListWinners)
	api.GET("/winners/:id", h.handleGetWinner)
	api.GET("/winners/election/:electionId", h.handleGetWinnerByElection)
	api.POST("/winners/:id/confirm", h.handleConfirmWinner)
	api.POST("/winners/:id/reject", h.handleRejectWinner)
}

// --- buildings & residents ---

func (h *Handler) handleListBuildings(c echo.Context) error {
	ctx := c.Request().Context()

	buildings, err := h.directory.ListBuildings(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, buildings)
}

func (h *Handler) handleGetBuilding(c echo.Context) error {
	ctx := c.Request().Context()

	building, err := h.directory.GetBuilding(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, building)
}

type seedBuildingsRequest struct {
	Count int `json:"count"`
}

func (h *Handler) handleSeedBuildings(c echo.Context) error {
	ctx := c.Request().Context()

	req := seedBuildingsRequest{Count: 56}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	if err := h.directory.SeedBuildings(ctx, req.Count); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"seeded": req.Count})
}

func (h *Handler) handleListResidents(c echo.Context) error {
	ctx := c.Request().Context()

	residents, err := h.directory.ListResidents(ctx, c.QueryParam("buildingId"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, residents)
}

func (h *Handler) handleGetResident(c echo.Context) error {
	ctx := c.Request().Context()

	resident, err := h.directory.GetResident(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, resident)
}

// --- elections ---

func (h *Handler) handleListElections(c echo.Context) error {
	ctx := c.Request().Context()

	elections, err := h.elections.List(ctx, c.QueryParam("buildingId"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, elections)
}

func (h *Handler) handleCreateElection(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.CreateElectionInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	election, err := h.elections.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, election)
}

func (h *Handler) handleGetElection(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.elections.Detail(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, detail)
}

func (h *Handler) handleDeleteElection(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.elections.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "deleted"})
}

func (h *Handler) handleTallyElection(c echo.Context) error {
	ctx := c.Request().Context()

	winner, err := h.tally.Tally(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winner)
}

func (h *Handler) handleVoteCounts(c echo.Context) error {
	ctx := c.Request().Context()

	counts, err := h.votes.Counts(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, counts)
}

// --- nominations ---

func (h *Handler) handleListNominations(c echo.Context) error {
	ctx := c.Request().Context()

	filter := usecase.NominationFilter{
		ElectionID: c.QueryParam("electionId"),
		Status:     domain.NominationStatus(c.QueryParam("status")),
	}

	nominations, err := h.nominations.List(ctx, filter)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, nominations)
}

func (h *Handler) handleSubmitNomination(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.SubmitNominationInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	nomination, err := h.nominations.Submit(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, nomination)
}

func (h *Handler) handleGetNomination(c echo.Context) error {
	ctx := c.Request().Context()

	nomination, err := h.nominations.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, nomination)
}

func (h *Handler) handleApproveNomination(c echo.Context) error {
	ctx := c.Request().Context()

	nomination, err := h.nominations.Approve(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, nomination)
}

func (h *Handler) handleRejectNomination(c echo.Context) error {
	ctx := c.Request().Context()

	nomination, err := h.nominations.Reject(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, nomination)
}

func (h *Handler) handleDeleteNomination(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.nominations.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "deleted"})
}

// --- votes ---

func (h *Handler) handleListVotes(c echo.Context) error {
	ctx := c.Request().Context()

	electionID := c.QueryParam("electionId")
	if electionID == "" {
		return presenter.BadRequestMessage(c, "electionId parameter is required")
	}

	votes, err := h.votes.ListByElection(ctx, electionID)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, votes)
}

func (h *Handler) handleCastVote(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.CastVoteInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	vote, err := h.votes.Cast(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, vote)
}

func (h *Handler) handleGetVote(c echo.Context) error {
	ctx := c.Request().Context()

	vote, err := h.votes.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, vote)
}

func (h *Handler) handleDeleteVote(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.votes.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "deleted"})
}

// --- winners ---

func (h *Handler) handleListWinners(c echo.Context) error {
	ctx := c.Request().Context()

	filter := usecase.WinnerFilter{
		Status:     domain.WinnerStatus(c.QueryParam("status")),
		BuildingID: c.QueryParam("buildingId"),
	}

	winners, err := h.winners.List(ctx, filter)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winners)
}

func (h *Handler) handleGetWinner(c echo.Context) error {
	ctx := c.Request().Context()

	winner, err := h.winners.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winner)
}

func (h *Handler) handleGetWinnerByElection(c echo.Context) error {
	ctx := c.Request().Context()

	winner, err := h.winners.GetByElection(ctx, c.Param("electionId"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winner)
}

type confirmWinnerRequest struct {
	ConfirmedBy string `json:"confirmedBy"`
}

func (h *Handler) handleConfirmWinner(c echo.Context) error {
	ctx := c.Request().Context()

	var req confirmWinnerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.ConfirmedBy == "" {
		return presenter.BadRequestMessage(c, "confirmedBy is required")
	}

	winner, err := h.winners.Confirm(ctx, c.Param("id"), req.ConfirmedBy)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winner)
}

func (h *Handler) handleRejectWinner(c echo.Context) error {
	ctx := c.Request().Context()

	winner, err := h.winners.Reject(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, winner)
}
