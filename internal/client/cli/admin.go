package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/shopspring/decimal"
)

const adminUsage = "Usage: admin accounts | activate <id> | deactivate <id> | delete-account <id> | orders | status <id> <status> | products | save-product [id] | delete-product <id>"

// Admin dispatches the back-office subcommands. The REPL only lets
// administrators in; the service checks the role again.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, adminUsage)
		return fmt.Errorf("%w: missing admin command", common.ErrValidation)
	}
	sub, rest := args[0], args[1:]

	needID := func() (string, error) {
		if len(rest) < 1 {
			fmt.Fprintln(a.out, adminUsage)
			return "", fmt.Errorf("%w: id is required", common.ErrValidation)
		}
		return rest[0], nil
	}

	switch sub {
	case "accounts":
		a.Navigate("/admin/accounts")
		list, err := a.admin.ListAccounts(ctx)
		if err != nil {
			return a.fail(err)
		}
		renderAccounts(a.out, list)

	case "activate", "deactivate":
		id, err := needID()
		if err != nil {
			return err
		}
		if err := a.admin.SetAccountActive(ctx, id, sub == "activate"); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "Account %s %sd\n", id, sub)

	case "delete-account":
		id, err := needID()
		if err != nil {
			return err
		}
		ok, err := GetYesNo(a.reader, fmt.Sprintf("Delete account %s?", id), a.out, false)
		if err != nil {
			return a.fail(err)
		}
		if !ok {
			return nil
		}
		if err := a.admin.DeleteAccount(ctx, id); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "Account %s deleted\n", id)

	case "orders":
		a.Navigate("/admin/orders")
		list, err := a.admin.ListOrders(ctx)
		if err != nil {
			return a.fail(err)
		}
		renderOrders(a.out, list)

	case "status":
		if len(rest) != 2 {
			fmt.Fprintln(a.out, adminUsage)
			return fmt.Errorf("%w: id and status are required", common.ErrValidation)
		}
		if err := a.admin.SetOrderStatus(ctx, rest[0], rest[1]); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "Order %s is now %s\n", rest[0], rest[1])

	case "products":
		a.Navigate("/admin/products")
		list, err := a.admin.ListProducts(ctx)
		if err != nil {
			return a.fail(err)
		}
		renderProductList(a.out, list)

	case "save-product":
		a.Navigate("/admin/products")
		p, err := a.askProduct(rest)
		if err != nil {
			return a.fail(err)
		}
		if err := a.admin.SaveProduct(ctx, p); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "Product %q saved\n", p.Name)

	case "delete-product":
		id, err := needID()
		if err != nil {
			return err
		}
		if err := a.admin.DeleteProduct(ctx, id); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "Product %s deleted\n", id)

	default:
		fmt.Fprintln(a.out, adminUsage)
		return fmt.Errorf("%w: unknown admin command %q", common.ErrValidation, sub)
	}
	return nil
}

// askProduct prompts for the product form. With an id argument the product
// is updated, otherwise created.
func (a *App) askProduct(args []string) (models.Product, error) {
	var p models.Product
	if len(args) > 0 {
		p.ID = args[0]
	}

	var err error
	if p.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return p, err
	}
	price, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return p, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return p, fmt.Errorf("%w: price must be a number", common.ErrValidation)
	}
	if p.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return p, err
	}
	if p.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return p, err
	}
	if p.Image, err = getSimpleText(a.reader, "Image URL (optional)", a.out); err != nil {
		return p, err
	}
	sizes, err := getSimpleText(a.reader, "Sizes, comma separated (optional)", a.out)
	if err != nil {
		return p, err
	}
	p.Sizes = splitList(sizes)
	colors, err := getSimpleText(a.reader, "Colors, comma separated (optional)", a.out)
	if err != nil {
		return p, err
	}
	p.Colors = splitList(colors)
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
