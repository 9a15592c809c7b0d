// Package http exposes the ordering use cases over a REST API built on
// github.com/labstack/echo/v4. It coordinates between HTTP handlers and
// application use cases: every route binds the request, builds a guarded
// command or query, and maps domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Server handles HTTP requests for the ordering service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler     commands.CreateCustomerCommandHandler
	addCustomerAddressHandler commands.AddCustomerAddressCommandHandler
	createRestaurantHandler   commands.CreateRestaurantCommandHandler
	addMenuItemHandler        commands.AddMenuItemCommandHandler
	createRiderHandler        commands.CreateRiderCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	addOrderItemHandler       commands.AddOrderItemCommandHandler
	updateOrderItemHandler    commands.UpdateOrderItemCommandHandler
	removeOrderItemHandler    commands.RemoveOrderItemCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	assignRiderHandler        commands.AssignRiderCommandHandler
	recordPaymentHandler      commands.RecordPaymentCommandHandler
	submitReviewHandler       commands.SubmitReviewCommandHandler

	// Query handlers
	getCustomerOrdersHandler     queries.GetCustomerOrdersQueryHandler
	getAvailableMenuItemsHandler queries.GetAvailableMenuItemsQueryHandler
	getRestaurantRatingHandler   queries.GetRestaurantRatingQueryHandler
	getRiderActiveOrdersHandler  queries.GetRiderActiveOrdersQueryHandler
	getRestaurantRevenueHandler  queries.GetRestaurantRevenueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	addCustomerAddressHandler commands.AddCustomerAddressCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	updateOrderItemHandler commands.UpdateOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAvailableMenuItemsHandler queries.GetAvailableMenuItemsQueryHandler,
	getRestaurantRatingHandler queries.GetRestaurantRatingQueryHandler,
	getRiderActiveOrdersHandler queries.GetRiderActiveOrdersQueryHandler,
	getRestaurantRevenueHandler queries.GetRestaurantRevenueQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:        createCustomerHandler,
		addCustomerAddressHandler:    addCustomerAddressHandler,
		createRestaurantHandler:      createRestaurantHandler,
		addMenuItemHandler:           addMenuItemHandler,
		createRiderHandler:           createRiderHandler,
		createOrderHandler:           createOrderHandler,
		addOrderItemHandler:          addOrderItemHandler,
		updateOrderItemHandler:       updateOrderItemHandler,
		removeOrderItemHandler:       removeOrderItemHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		assignRiderHandler:           assignRiderHandler,
		recordPaymentHandler:         recordPaymentHandler,
		submitReviewHandler:          submitReviewHandler,
		getCustomerOrdersHandler:     getCustomerOrdersHandler,
		getAvailableMenuItemsHandler: getAvailableMenuItemsHandler,
		getRestaurantRatingHandler:   getRestaurantRatingHandler,
		getRiderActiveOrdersHandler:  getRiderActiveOrdersHandler,
		getRestaurantRevenueHandler:  getRestaurantRevenueHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.POST("/customers/:customer_id/addresses", s.AddCustomerAddress)
	api.GET("/customers/:customer_id/orders", s.GetCustomerOrders)

	api.POST("/restaurants", s.CreateRestaurant)
	api.POST("/restaurants/:restaurant_id/menu-items", s.AddMenuItem)
	api.GET("/restaurants/:restaurant_id/menu-items", s.GetMenuItems)
	api.GET("/restaurants/:restaurant_id/rating", s.GetRestaurantRating)
	api.GET("/restaurants/:restaurant_id/revenue", s.GetRestaurantRevenue)

	api.POST("/riders", s.CreateRider)
	api.GET("/riders/:rider_id/orders", s.GetRiderOrders)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:order_id/items", s.AddOrderItem)
	api.PATCH("/orders/items/:item_id", s.UpdateOrderItem)
	api.DELETE("/orders/items/:item_id", s.RemoveOrderItem)
	api.PATCH("/orders/:order_id/status", s.UpdateOrderStatus)
	api.POST("/orders/:order_id/rider", s.AssignRider)
	api.POST("/orders/:order_id/payment", s.RecordPayment)
	api.POST("/orders/:order_id/review", s.SubmitReview)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req NewCustomer
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if req.Password == "" {
		return badRequest(ctx, "Password is required")
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(ctx, err)
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(
		customerID, req.Name, req.Email, req.Phone, string(passwordHash))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: customerID.String()})
}

// AddCustomerAddress handles POST /api/v1/customers/:customer_id/addresses.
func (s *Server) AddCustomerAddress(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customer_id")
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	var req NewAddress
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addressID := kernel.NewUUID()

	cmd, err := commands.NewAddCustomerAddressCommand(
		customerID, addressID, req.Street, req.City, req.PostalCode, req.Country)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addCustomerAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: addressID.String()})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req NewRestaurant
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID, req.Name, req.Email, req.Phone, req.AddressLine)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: restaurantID.String()})
}

// AddMenuItem handles POST /api/v1/restaurants/:restaurant_id/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	var req NewMenuItem
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	// An omitted category files the dish under the default category.
	var categoryID kernel.UUID
	if req.CategoryID != "" {
		categoryID, err = kernel.UUIDFromString(req.CategoryID)
		if err != nil {
			return badRequest(ctx, "Invalid category identifier")
		}
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID := kernel.NewUUID()

	cmd, err := commands.NewAddMenuItemCommand(restaurantID, menuItemID, categoryID, req.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: menuItemID.String()})
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req NewRider
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicle, err := rider.VehicleKindFromString(req.Vehicle)
	if err != nil {
		return respondError(ctx, err)
	}

	riderID := kernel.NewUUID()

	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name, req.Phone, vehicle)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: riderID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return badRequest(ctx, "Invalid address identifier")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, addressID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:order_id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req NewOrderItem
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item identifier")
	}

	orderItemID := kernel.NewUUID()

	cmd, err := commands.NewAddOrderItemCommand(orderID, orderItemID, menuItemID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderItemID.String()})
}

// UpdateOrderItem handles PATCH /api/v1/orders/items/:item_id.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "item_id")
	if err != nil {
		return badRequest(ctx, "Invalid order item identifier")
	}

	var req OrderItemUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemCommand(itemID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/items/:item_id.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "item_id")
	if err != nil {
		return badRequest(ctx, "Invalid order item identifier")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:order_id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req StatusUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/orders/:order_id/rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req RiderAssignment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider identifier")
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:order_id/payment.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req NewPayment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewRecordPaymentCommand(paymentID, orderID, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: paymentID.String()})
}

// SubmitReview handles POST /api/v1/orders/:order_id/review.
func (s *Server) SubmitReview(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var req NewReview
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reviewID := kernel.NewUUID()

	cmd, err := commands.NewSubmitReviewCommand(reviewID, orderID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: reviewID.String()})
}

// GetCustomerOrders handles GET /api/v1/customers/:customer_id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customer_id")
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerOrder, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrder{
			ID:          o.ID.String(),
			Status:      o.Status.String(),
			TotalAmount: o.TotalAmount,
			PlacedAt:    o.PlacedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItems handles GET /api/v1/restaurants/:restaurant_id/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	query, err := queries.NewGetAvailableMenuItemsQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getAvailableMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:       item.MenuItemID.String(),
			Category: item.CategoryName,
			Name:     item.Name,
			Price:    item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantRating handles GET /api/v1/restaurants/:restaurant_id/rating.
func (s *Server) GetRestaurantRating(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	query, err := queries.NewGetRestaurantRatingQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	rating, err := s.getRestaurantRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantRating{
		AverageRating: rating.AverageRating,
		ReviewCount:   rating.ReviewCount,
	})
}

// GetRestaurantRevenue handles GET /api/v1/restaurants/:restaurant_id/revenue.
// The reporting period comes from the "from" and "to" query parameters in
// RFC 3339 format; "to" is exclusive.
func (s *Server) GetRestaurantRevenue(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid period start")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid period end")
	}

	query, err := queries.NewGetRestaurantRevenueQuery(restaurantID, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	revenue, err := s.getRestaurantRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantRevenue{
		DeliveredRevenue: revenue.DeliveredRevenue,
		DeliveredCount:   revenue.DeliveredCount,
		CancelledCount:   revenue.CancelledCount,
	})
}

// GetRiderOrders handles GET /api/v1/riders/:rider_id/orders.
func (s *Server) GetRiderOrders(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "rider_id")
	if err != nil {
		return badRequest(ctx, "Invalid rider identifier")
	}

	query, err := queries.NewGetRiderActiveOrdersQuery(riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getRiderActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RiderOrder, len(orders))
	for i, o := range orders {
		response[i] = RiderOrder{
			ID:       o.ID.String(),
			Status:   o.Status.String(),
			PlacedAt: o.PlacedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// badRequest responds with a 400 and the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors to HTTP status codes: missing objects
// become 404, rejected transitions and stale versions become 409, value
// errors become 400, everything else is a 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
