package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category groups menu items under a URL-safe slug. Categories referenced by
// menu items cannot be removed; they change only through explicit edits.
type Category struct {
	id    kernel.UUID
	slug  string
	title string

	isConstructed bool
}

// NewCategory creates a Category with a validated slug and title.
func NewCategory(id kernel.UUID, slug, title string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setSlug(slug),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Category was properly constructed through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Slug returns the URL-safe identifier, unique across categories.
func (c *Category) Slug() string {
	return c.slug
}

// Title returns the display title.
func (c *Category) Title() string {
	return c.title
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q is not a URL-safe slug", slug))
	}
	c.slug = slug
	return nil
}

func (c *Category) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
