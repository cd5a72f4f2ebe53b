package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderProducts(w io.Writer, page *models.ProductPage) {
	if len(page.Products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSIZES\tCOLORS")
	for _, p := range page.Products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, money(p.Price),
			strings.Join(p.Sizes, ","), strings.Join(p.Colors, ","))
	}
	tw.Flush()

	pg := page.Pagination
	line := fmt.Sprintf("Page %d of %d (%d products)", pg.CurrentPage, pg.TotalPages, pg.TotalProducts)
	if pg.HasNextPage {
		line += ", more available"
	}
	fmt.Fprintln(w, line)
}

func renderCart(w io.Writer, snap models.CartSnapshot) {
	if snap.Empty() {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "LINE\tPRODUCT\tSIZE\tCOLOR\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range snap.Lines {
		price, sub := "-", "-"
		if l.Price != nil {
			price = money(*l.Price)
		}
		if s, err := l.Subtotal(); err == nil {
			sub = money(s)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", l.ID, l.Name, l.Size, l.Color, l.Qty(), price, sub)
	}
	tw.Flush()
}

func renderOrders(w io.Writer, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ORDER\tDATE\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		date := "-"
		if o.CreatedAt != nil {
			date = o.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", o.Ref(), date, len(o.Items), money(o.TotalAmount), o.Status)
	}
	tw.Flush()
}

func renderOrder(w io.Writer, o *models.Order) {
	fmt.Fprintf(w, "Order %s (%s)\n", o.Ref(), o.Status)
	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCT\tSIZE\tQTY\tPRICE")
	for _, it := range o.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.Name, it.Size, it.Quantity, money(it.Price))
	}
	tw.Flush()
	fmt.Fprintf(w, "Subtotal: %s\nTax: %s\nTotal: %s\n", money(o.Subtotal), money(o.Tax), money(o.TotalAmount))
	a := o.ShippingAddress
	if a.Address != "" {
		fmt.Fprintf(w, "Ship to: %s %s, %s, %s %s, %s\n", a.FirstName, a.LastName, a.Address, a.City, a.ZipCode, a.Country)
	}
}

func renderAccounts(w io.Writer, accounts []models.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", acc.ID, acc.Username, acc.Email, acc.Role, acc.StatusLabel())
	}
	tw.Flush()
}

func renderProductList(w io.Writer, products []models.Product) {
	renderProducts(w, &models.ProductPage{
		Products:   products,
		Pagination: models.Pagination{CurrentPage: 1, TotalPages: 1, TotalProducts: len(products)},
	})
}
