package handler

import (
	"log/slog"
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListHandlerParams holds dependencies for ListHandler, injected by Fx.
type ListHandlerParams struct {
	fx.In

	ListUC usecase.ListUsecase
	Logger *slog.Logger
}

// ListHandler serves list and list item endpoints.
type ListHandler struct {
	listUC usecase.ListUsecase
	logger *slog.Logger
}

// NewListHandler is the constructor for ListHandler
func NewListHandler(params ListHandlerParams) *ListHandler {
	return &ListHandler{
		listUC: params.ListUC,
		logger: params.Logger,
	}
}

// ListNameRequest is the body of create and rename.
type ListNameRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// AddItemRequest describes a catalogue entry to add.
type AddItemRequest struct {
	ItemType     string `json:"item_type" validate:"required"`
	ItemID       string `json:"item_id" validate:"required"`
	ItemName     string `json:"item_name" validate:"required"`
	ItemSubtitle string `json:"item_subtitle"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
}

// ReorderRequest is the complete new order of a list.
type ReorderRequest struct {
	OrderedItemIDs []string `json:"ordered_item_ids" validate:"required"`
}

// MoveRequest moves one item next to its neighbour.
type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// DeletedResponse acknowledges a removal.
type DeletedResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// CreateList handles list creation
func (h *ListHandler) CreateList(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req ListNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	list, err := h.listUC.CreateList(c.Request().Context(), accountID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, list)
}

// GetLists returns every list of the caller with items in position order
func (h *ListHandler) GetLists(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	lists, err := h.listUC.GetLists(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lists)
}

// RenameList handles list renames
func (h *ListHandler) RenameList(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	var req ListNameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	list, err := h.listUC.RenameList(c.Request().Context(), accountID, listID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// DeleteList removes a list with its items
func (h *ListHandler) DeleteList(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	if err := h.listUC.DeleteList(c.Request().Context(), accountID, listID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DeletedResponse{ID: listID, Deleted: true})
}

// AddItem appends an item or refreshes its metadata
func (h *ListHandler) AddItem(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.listUC.AddItem(c.Request().Context(), accountID, listID, &usecase.AddItemInput{
		ItemType:     entity.ItemType(req.ItemType),
		ItemID:       req.ItemID,
		ItemName:     req.ItemName,
		ItemSubtitle: req.ItemSubtitle,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// ReorderItems replaces the order of the whole list
func (h *ListHandler) ReorderItems(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	var req ReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order := make([]uuid.UUID, 0, len(req.OrderedItemIDs))
	for _, raw := range req.OrderedItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrReorderMismatch
		}
		order = append(order, id)
	}

	list, err := h.listUC.ReorderItems(c.Request().Context(), accountID, listID, order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// MoveItem swaps an item with its neighbour
func (h *ListHandler) MoveItem(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	itemID, err := pathUUID(c, "itemId", domainerrors.ErrListItemNotFound)
	if err != nil {
		return err
	}

	var req MoveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	list, err := h.listUC.MoveItem(c.Request().Context(), accountID, listID, itemID, entity.MoveDirection(req.Direction))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// RemoveItem deletes one item; remaining positions keep their gaps
func (h *ListHandler) RemoveItem(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	listID, err := pathUUID(c, "id", domainerrors.ErrListNotFound)
	if err != nil {
		return err
	}

	itemID, err := pathUUID(c, "itemId", domainerrors.ErrListItemNotFound)
	if err != nil {
		return err
	}

	if err := h.listUC.RemoveItem(c.Request().Context(), accountID, listID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DeletedResponse{ID: itemID, Deleted: true})
}
