package menu

import (
	"errors"
	"io"
	"log/slog"
)

// Service is the menu store: the single source of truth shared by every
// surface. It validates form drafts and applies them to the repository.
type Service struct {
	repo    Repository
	variant Variant
	logger  *slog.Logger
}

func NewService(repo Repository, variant Variant, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, variant: variant, logger: logger}
}

func (s *Service) Variant() Variant {
	return s.variant
}

// --------------------------------------------------
// Add (append to the end of the menu)
// --------------------------------------------------
func (s *Service) Add(draft Draft) (Item, int, error) {
	if err := ValidateDraft(draft, s.variant); err != nil {
		return Item{}, -1, err
	}

	item := draft.Item()
	index := s.repo.Append(item)

	s.logger.Debug("menu item added",
		"name", item.Name,
		"course", item.Course,
		"index", index,
	)
	return item, index, nil
}

// --------------------------------------------------
// Remove (every item with a matching name)
// --------------------------------------------------
func (s *Service) Remove(name string) int {
	removed := s.repo.RemoveByName(name)

	s.logger.Debug("menu item removed", "name", name, "removed", removed)
	return removed
}

// --------------------------------------------------
// ReplaceAt (edit in place)
// --------------------------------------------------
func (s *Service) ReplaceAt(index int, draft Draft) (Item, error) {
	if err := ValidateDraft(draft, s.variant); err != nil {
		return Item{}, err
	}

	item := draft.Item()
	if err := s.repo.Replace(index, item); err != nil {
		return Item{}, err
	}

	s.logger.Debug("menu item replaced", "name", item.Name, "index", index)
	return item, nil
}

func (s *Service) Get(index int) (Item, error) {
	return s.repo.Get(index)
}

func (s *Service) List() []Item {
	return s.repo.List()
}

func (s *Service) Count() int {
	return s.repo.Len()
}

// Averages recomputes the course averages from the current menu.
func (s *Service) Averages() Averages {
	return CalculateAverages(s.repo.List())
}

// Filter returns the current items for a course, or all of them.
func (s *Service) Filter(course string) []Item {
	return FilterByCourse(s.repo.List(), course)
}

// IsValidation reports whether err came from an incomplete form.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
