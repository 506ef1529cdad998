package menu

import (
	"errors"
	"net/http"
	"strconv"

	"menuboard/internal/apperr"

	"github.com/gin-gonic/gin"
)

// SortPreference tells list views whether to order items by price.
type SortPreference interface {
	SortByPrice() bool
}

type Handler struct {
	service *Service
	prefs   SortPreference
}

func NewHandler(service *Service, prefs SortPreference) *Handler {
	return &Handler{service: service, prefs: prefs}
}

// --------------------------------------------------
// Welcome (home screen greeting)
// --------------------------------------------------
func (h *Handler) Welcome(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		username = "Guest"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome, " + username + "!",
		"items":   h.service.Count(),
		"variant": h.service.Variant(),
	})
}

// --------------------------------------------------
// Full menu with course averages
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items := h.service.List()

	c.JSON(http.StatusOK, gin.H{
		"items":    h.present(c, items),
		"count":    len(items),
		"averages": CalculateAverages(items),
	})
}

func (h *Handler) Averages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"averages": h.service.Averages(),
	})
}

// --------------------------------------------------
// Filter by course (?course=Mains, default All)
// --------------------------------------------------
func (h *Handler) Filter(c *gin.Context) {
	course := c.DefaultQuery("course", AllCourses)
	items := h.service.Filter(course)

	c.JSON(http.StatusOK, gin.H{
		"course": course,
		"items":  h.present(c, items),
		"count":  len(items),
	})
}

func (h *Handler) Courses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"courses": FilterOptions(),
	})
}

// --------------------------------------------------
// Manage: add / get / replace / remove
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		_ = c.Error(apperr.Wrap(http.StatusBadRequest, "invalid request", err))
		return
	}

	item, index, err := h.service.Add(draft)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":  item,
		"index": index,
	})
}

func (h *Handler) GetItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	item, err := h.service.Get(index)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":  item,
		"index": index,
		"draft": DraftFrom(item),
	})
}

func (h *Handler) ReplaceItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		_ = c.Error(apperr.Wrap(http.StatusBadRequest, "invalid request", err))
		return
	}

	item, err := h.service.ReplaceAt(index, draft)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":  item,
		"index": index,
	})
}

// RemoveItem deletes by name. Removing a name that is not on the menu
// succeeds with removed=0.
func (h *Handler) RemoveItem(c *gin.Context) {
	name := c.Param("name")
	removed := h.service.Remove(name)

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"removed": removed,
	})
}

// present applies the sort preference, which ?sorted=true|false overrides.
func (h *Handler) present(c *gin.Context, items []Item) []Item {
	sorted := h.prefs != nil && h.prefs.SortByPrice()
	if raw, ok := c.GetQuery("sorted"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			sorted = v
		}
	}

	if sorted {
		return SortByPrice(items)
	}
	return items
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		_ = c.Error(apperr.BadRequest("index must be an integer"))
		return 0, false
	}
	return index, true
}

func toAppError(err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return &apperr.Error{
			Status:  http.StatusBadRequest,
			Message: "Please fill in all fields",
			Fields:  verr.Fields,
			Err:     err,
		}
	case errors.Is(err, ErrIndexOutOfRange):
		return apperr.Wrap(http.StatusNotFound, err.Error(), err)
	}
	return err
}
