package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/recipe"
	"fulfillment/internal/pkg/errs"
)

// RecipeBook maps menu items to their recipes. It is the recipe resolver of
// the engine: a missing recipe is a hard stop, never an empty requirement list.
type RecipeBook struct {
	byMenuItem map[kernel.UUID]*recipe.Recipe
}

// NewRecipeBook indexes recipes by menu item. Two recipes for the same menu
// item are rejected.
func NewRecipeBook(recipes ...*recipe.Recipe) (RecipeBook, error) {
	book := RecipeBook{byMenuItem: make(map[kernel.UUID]*recipe.Recipe, len(recipes))}
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return RecipeBook{}, err
		}
		if _, dup := book.byMenuItem[r.MenuItemID()]; dup {
			return RecipeBook{}, errs.NewValueIsInvalidErrorWithCause("recipes",
				fmt.Errorf("menu item %s has more than one recipe", r.MenuItemID()))
		}
		book.byMenuItem[r.MenuItemID()] = r
	}
	return book, nil
}

// Recipe returns the recipe of menuItemID, or an *errs.ObjectNotFoundError.
func (b RecipeBook) Recipe(menuItemID kernel.UUID) (*recipe.Recipe, error) {
	r, ok := b.byMenuItem[menuItemID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("recipe", menuItemID.String())
	}
	return r, nil
}

// RequirementsFor returns the requirements of the menu item's recipe.
func (b RecipeBook) RequirementsFor(menuItemID kernel.UUID) ([]recipe.Requirement, error) {
	r, err := b.Recipe(menuItemID)
	if err != nil {
		return nil, err
	}
	return r.Requirements(), nil
}

func (b RecipeBook) Len() int {
	return len(b.byMenuItem)
}

// Stock is the current stock of the ingredients an operation touches, keyed by ingredient id.
type Stock map[kernel.UUID]*inventory.Ingredient

func NewStock(ingredients ...*inventory.Ingredient) Stock {
	stock := make(Stock, len(ingredients))
	for _, i := range ingredients {
		stock[i.ID()] = i
	}
	return stock
}

// Requirement is the total amount of one ingredient an order needs.
type Requirement struct {
	IngredientID kernel.UUID
	Quantity     kernel.Quantity
}

// RequirementsOf sums quantity_for_recipe × item quantity per ingredient over
// all items of o. Ingredients appear once, in the order they are first seen.
// The recipe amount is already per order unit, so no serving size division applies.
func RequirementsOf(o *order.Order, book RecipeBook) ([]Requirement, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var totals []Requirement
	index := make(map[kernel.UUID]int)
	for _, item := range o.Items() {
		reqs, err := book.RequirementsFor(item.MenuItemID())
		if err != nil {
			return nil, err
		}
		for _, req := range reqs {
			amount := req.Quantity().Times(item.Quantity())
			if i, ok := index[req.IngredientID()]; ok {
				totals[i].Quantity = totals[i].Quantity.Add(amount)
				continue
			}
			index[req.IngredientID()] = len(totals)
			totals = append(totals, Requirement{IngredientID: req.IngredientID(), Quantity: amount})
		}
	}
	return totals, nil
}

// IngredientIDsOf lists the ingredients o needs without computing amounts.
func IngredientIDsOf(o *order.Order, book RecipeBook) ([]kernel.UUID, error) {
	reqs, err := RequirementsOf(o, book)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.UUID, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.IngredientID)
	}
	return ids, nil
}
