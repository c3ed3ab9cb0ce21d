package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Catalog lists the products available to the logged-in buyer.
func (a *App) Catalog(ctx context.Context) error {
	products, err := a.catalogService.Products(ctx)
	if err != nil {
		fmt.Println("Could not load catalog:", err)
		return err
	}

	if len(products) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%4d. %-30s ₹%.2f", p.ID, p.Name, p.Price)
		if p.SellerName != "" {
			fmt.Printf("  (%s)", p.SellerName)
		}
		fmt.Println()
	}
	return nil
}

// Order prompts for a product id and quantity and places the order.
func (a *App) Order(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}
	productID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number.")
		return err
	}

	qtyText, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(qtyText)
	if err != nil || quantity < 1 {
		fmt.Println("Quantity must be a positive number.")
		return fmt.Errorf("invalid quantity %q", qtyText)
	}

	order, err := a.catalogService.Order(ctx, productID, quantity)
	if err != nil {
		fmt.Println("Could not place order:", err)
		return err
	}

	fmt.Printf("Order #%d placed (%s).\n", order.ID, order.Status)
	return nil
}

// Orders lists the user's past orders.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.catalogService.MyOrders(ctx)
	if err != nil {
		fmt.Println("Could not load orders:", err)
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("#%d  %s x%d  %s  %s\n", o.ID, o.Product, o.Quantity, o.Status, o.CreatedAt.Local().Format("2006-01-02"))
	}
	return nil
}
