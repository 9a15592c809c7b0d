package http

// Wire types for the REST API. Identifiers travel as UUID strings;
// monetary amounts travel as integer currency subunits.

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created reports the identifier of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// NewCustomer is the request body for registering a customer. The password
// is hashed at this edge; only the hash crosses into the core.
type NewCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// NewAddress is the request body for adding a delivery address.
type NewAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// NewRestaurant is the request body for registering a restaurant.
type NewRestaurant struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
}

// NewMenuItem is the request body for adding a dish to a menu.
// CategoryID is optional; an empty value files the dish under the
// restaurant's default category.
type NewMenuItem struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	CategoryID string `json:"category_id,omitempty"`
}

// NewRider is the request body for registering a rider.
type NewRider struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID   string `json:"customer_id"`
	RestaurantID string `json:"restaurant_id"`
	AddressID    string `json:"address_id"`
}

// NewOrderItem is the request body for adding a line item to an order.
type NewOrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderItemUpdate is the request body for changing a line item quantity.
type OrderItemUpdate struct {
	Quantity int `json:"quantity"`
}

// StatusUpdate is the request body for moving an order through its
// lifecycle.
type StatusUpdate struct {
	Status string `json:"status"`
}

// RiderAssignment is the request body for assigning a specific rider.
type RiderAssignment struct {
	RiderID string `json:"rider_id"`
}

// NewPayment is the request body for settling an order. The amount is
// not part of the request: payments settle the order's current total.
type NewPayment struct {
	Method string `json:"method"`
}

// NewReview is the request body for reviewing a delivered order.
type NewReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CustomerOrder is one order in a customer's history.
type CustomerOrder struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
	PlacedAt    string `json:"placed_at"`
}

// MenuItem is one orderable dish on a restaurant's menu.
type MenuItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
}

// RestaurantRating is the aggregated review score of a restaurant.
type RestaurantRating struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// RestaurantRevenue is the aggregated period report of a restaurant.
type RestaurantRevenue struct {
	DeliveredRevenue int64 `json:"delivered_revenue"`
	DeliveredCount   int64 `json:"delivered_count"`
	CancelledCount   int64 `json:"cancelled_count"`
}

// RiderOrder is one order in a rider's active workload.
type RiderOrder struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	PlacedAt string `json:"placed_at"`
}
