// Package recipe provides the Recipe aggregate: how much of each ingredient a
// menu item consumes, and for how many servings those amounts are written.
package recipe

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrRecipeIsNotConstructed is returned when using an improperly initialized Recipe.
	ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")

	// ErrRequirementIsNotConstructed is returned when a Requirement literal bypassed NewRequirement.
	ErrRequirementIsNotConstructed = errors.New("Requirement must be created via NewRequirement constructor")

	// ErrDuplicateIngredient is the cause reported when one recipe lists an ingredient twice.
	ErrDuplicateIngredient = errors.New("ingredient listed more than once")
)

// Requirement is the amount of one ingredient a recipe needs.
type Requirement struct {
	ingredientID kernel.UUID
	quantity     kernel.Quantity
	guard        guard.ConstructorGuard
}

// NewRequirement validates that quantity is strictly positive.
func NewRequirement(ingredientID kernel.UUID, quantity kernel.Quantity) (Requirement, error) {
	var quantityErr error
	if !quantity.IsPositive() {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity for recipe is invalid",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	if err := errors.Join(ingredientID.Validate(), quantityErr); err != nil {
		return Requirement{}, err
	}

	return Requirement{
		ingredientID: ingredientID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (r Requirement) IngredientID() kernel.UUID {
	return r.ingredientID
}

// Quantity is the amount needed per order unit of the menu item, which is
// also the amount for StandardServingPax servings.
func (r Requirement) Quantity() kernel.Quantity {
	return r.quantity
}

func (r Requirement) Validate() error {
	return r.guard.Validate(ErrRequirementIsNotConstructed)
}

// Recipe lists the ingredient requirements of a single menu item.
//
// Business rules:
//   - At most one recipe exists per menu item (enforced by storage)
//   - StandardServingPax is positive
//   - Requirements keep their declared order and name each ingredient once
type Recipe struct {
	id                 kernel.UUID
	menuItemID         kernel.UUID
	standardServingPax int
	requirements       []Requirement
	guard              guard.ConstructorGuard
}

// NewRecipe validates and builds a recipe.
//
// Example:
//
//	flour, _ := recipe.NewRequirement(flourID, kernel.MustQuantity("300"))
//	r, err := recipe.NewRecipe(kernel.NewUUID(), pizzaID, 2, []recipe.Requirement{flour})
func NewRecipe(id, menuItemID kernel.UUID, standardServingPax int, requirements []Requirement) (*Recipe, error) {
	r := &Recipe{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setMenuItem(menuItemID),
		r.setServingPax(standardServingPax),
		r.setRequirements(requirements),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recipe) Validate() error {
	if r == nil {
		return ErrRecipeIsNotConstructed
	}
	return r.guard.Validate(ErrRecipeIsNotConstructed)
}

func (r *Recipe) ID() kernel.UUID {
	return r.id
}

func (r *Recipe) MenuItemID() kernel.UUID {
	return r.menuItemID
}

func (r *Recipe) StandardServingPax() int {
	return r.standardServingPax
}

// Requirements returns a copy of the requirements in declared order.
func (r *Recipe) Requirements() []Requirement {
	reqs := make([]Requirement, len(r.requirements))
	copy(reqs, r.requirements)
	return reqs
}

func (r *Recipe) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipe) setMenuItem(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu item", err)
	}
	r.menuItemID = menuItemID
	return nil
}

func (r *Recipe) setServingPax(pax int) error {
	if pax <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("standard serving pax is invalid",
			fmt.Errorf("%d is not greater than 0", pax))
	}
	r.standardServingPax = pax
	return nil
}

func (r *Recipe) setRequirements(requirements []Requirement) error {
	seen := make(map[kernel.UUID]struct{}, len(requirements))
	for _, req := range requirements {
		if err := req.Validate(); err != nil {
			return err
		}
		if _, dup := seen[req.ingredientID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("requirements",
				fmt.Errorf("%s: %w", req.ingredientID, ErrDuplicateIngredient))
		}
		seen[req.ingredientID] = struct{}{}
	}
	r.requirements = make([]Requirement, len(requirements))
	copy(r.requirements, requirements)
	return nil
}
