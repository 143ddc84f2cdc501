package httphandler

import "github.com/niksmo/storefront/internal/core/domain"

func toProduct(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price.Amount,
		Image:        p.Image,
		Stock:        p.Stock,
		Available:    p.Available,
	}
}

func toCartState(s domain.CartState) CartState {
	items := make([]CartItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, CartItem{
			Product:  toProduct(it.Product),
			Quantity: it.Quantity,
		})
	}
	return CartState{Items: items, Total: s.Total}
}

func toCheckoutView(v domain.CheckoutView) CheckoutView {
	return CheckoutView{
		CheckoutID: v.CheckoutID,
		Steps:      v.StepTitles,
		StepIndex:  v.StepIndex,
		StepTitle:  v.StepTitle,
		CanGoBack:  v.CanGoBack,
		Total:      v.Total,
		Submitted:  v.Submitted,
		OrderID:    v.OrderID,
	}
}

func toUser(u domain.User) User {
	return User{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmed,
	}
}

func toOrder(o domain.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price.Amount,
		})
	}
	return Order{
		ID:              o.ID,
		Items:           items,
		Total:           o.Total,
		PaymentStatus:   o.PaymentStatus,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt,
	}
}

func toDashboard(d domain.DashboardReport) Dashboard {
	recent := make([]RecentOrder, 0, len(d.RecentOrders))
	for _, ro := range d.RecentOrders {
		recent = append(recent, RecentOrder(ro))
	}

	top := make([]TopProduct, 0, len(d.TopProducts))
	for _, tp := range d.TopProducts {
		top = append(top, TopProduct(tp))
	}

	daily := make([]DailyRevenue, 0, len(d.DailyRevenue))
	for _, dr := range d.DailyRevenue {
		daily = append(daily, DailyRevenue(dr))
	}

	return Dashboard{
		TotalRevenue:    d.TotalRevenue,
		TotalOrders:     d.TotalOrders,
		TotalProducts:   d.TotalProducts,
		TotalUsers:      d.TotalUsers,
		RecentOrders:    recent,
		TopProducts:     top,
		SalesByCategory: d.SalesByCategory,
		DailyRevenue:    daily,
	}
}
