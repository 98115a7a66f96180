package http

import (
	"net/http"
	"strconv"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/promotion"
	"laundry/internal/core/domain/model/store"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/auth"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	issuer auth.TokenIssuer

	// Command handlers
	registerUserHandler           commands.RegisterUserCommandHandler
	createStoreHandler            commands.CreateStoreCommandHandler
	createPartnerHandler          commands.CreatePartnerCommandHandler
	createOrderHandler            commands.CreateOrderCommandHandler
	acceptOrderHandler            commands.AcceptOrderCommandHandler
	advanceOrderHandler           commands.AdvanceOrderCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	deleteOrderHandler            commands.DeleteOrderCommandHandler
	setPartnerAvailabilityHandler commands.SetPartnerAvailabilityCommandHandler
	approvePartnerHandler         commands.ApprovePartnerCommandHandler
	createPromotionHandler        commands.CreatePromotionCommandHandler

	// Query handlers
	loginHandler               queries.LoginQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getStoreOrdersHandler      queries.GetStoreOrdersQueryHandler
	getOrderDetailHandler      queries.GetOrderDetailQueryHandler
	getNearbyStoresHandler     queries.GetNearbyStoresQueryHandler
	getActivePromotionsHandler queries.GetActivePromotionsQueryHandler
}

// ServerParams carries the handler set for NewServer.
type ServerParams struct {
	Issuer auth.TokenIssuer

	RegisterUserHandler           commands.RegisterUserCommandHandler
	CreateStoreHandler            commands.CreateStoreCommandHandler
	CreatePartnerHandler          commands.CreatePartnerCommandHandler
	CreateOrderHandler            commands.CreateOrderCommandHandler
	AcceptOrderHandler            commands.AcceptOrderCommandHandler
	AdvanceOrderHandler           commands.AdvanceOrderCommandHandler
	CancelOrderHandler            commands.CancelOrderCommandHandler
	DeleteOrderHandler            commands.DeleteOrderCommandHandler
	SetPartnerAvailabilityHandler commands.SetPartnerAvailabilityCommandHandler
	ApprovePartnerHandler         commands.ApprovePartnerCommandHandler
	CreatePromotionHandler        commands.CreatePromotionCommandHandler

	LoginHandler               queries.LoginQueryHandler
	GetAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	GetStoreOrdersHandler      queries.GetStoreOrdersQueryHandler
	GetOrderDetailHandler      queries.GetOrderDetailQueryHandler
	GetNearbyStoresHandler     queries.GetNearbyStoresQueryHandler
	GetActivePromotionsHandler queries.GetActivePromotionsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		issuer:                        params.Issuer,
		registerUserHandler:           params.RegisterUserHandler,
		createStoreHandler:            params.CreateStoreHandler,
		createPartnerHandler:          params.CreatePartnerHandler,
		createOrderHandler:            params.CreateOrderHandler,
		acceptOrderHandler:            params.AcceptOrderHandler,
		advanceOrderHandler:           params.AdvanceOrderHandler,
		cancelOrderHandler:            params.CancelOrderHandler,
		deleteOrderHandler:            params.DeleteOrderHandler,
		setPartnerAvailabilityHandler: params.SetPartnerAvailabilityHandler,
		approvePartnerHandler:         params.ApprovePartnerHandler,
		createPromotionHandler:        params.CreatePromotionHandler,
		loginHandler:                  params.LoginHandler,
		getAvailableOrdersHandler:     params.GetAvailableOrdersHandler,
		getStoreOrdersHandler:         params.GetStoreOrdersHandler,
		getOrderDetailHandler:         params.GetOrderDetailHandler,
		getNearbyStoresHandler:        params.GetNearbyStoresHandler,
		getActivePromotionsHandler:    params.GetActivePromotionsHandler,
	}
}

// RegisterRoutes attaches all routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.RegisterUser)
	api.POST("/auth/login", s.Login)
	api.POST("/stores", s.RegisterStore)
	api.POST("/partners", s.RegisterPartner)
	api.GET("/stores/nearby", s.GetNearbyStores)
	api.GET("/promotions/active", s.GetActivePromotions)

	authed := api.Group("", Authenticate(s.issuer))

	authed.POST("/orders", s.CreateOrder, RequireRole(user.RoleCustomer.String()))
	authed.GET("/orders/available", s.GetAvailableOrders, RequireRole(user.RoleDeliveryPartner.String()))
	authed.POST("/orders/:orderId/accept", s.AcceptOrder, RequireRole(user.RoleDeliveryPartner.String()))
	authed.POST("/orders/:orderId/advance", s.AdvanceOrder,
		RequireRole(user.RoleStore.String(), user.RoleDeliveryPartner.String()))
	authed.POST("/orders/:orderId/cancel", s.CancelOrder,
		RequireRole(user.RoleCustomer.String(), user.RoleStore.String(), user.RoleAdmin.String()))
	authed.DELETE("/orders/:orderId", s.DeleteOrder, RequireRole(user.RoleStore.String()))
	authed.GET("/orders/:orderId", s.GetOrderDetail, RequireRole(user.RoleStore.String()))
	authed.GET("/stores/me/orders", s.GetStoreOrders, RequireRole(user.RoleStore.String()))
	authed.PUT("/partners/me/availability", s.SetPartnerAvailability,
		RequireRole(user.RoleDeliveryPartner.String()))
	authed.POST("/partners/:partnerId/approve", s.ApprovePartner, RequireRole(user.RoleAdmin.String()))
	authed.POST("/promotions", s.CreatePromotion, RequireRole(user.RoleAdmin.String()))
}

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "user registered", echo.Map{"id": userID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password, req.Role)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "logged in", echo.Map{
		"token": result.Token,
		"id":    result.SubjectID,
		"role":  result.Role,
	})
}

// RegisterStore handles POST /api/v1/stores.
func (s *Server) RegisterStore(ctx echo.Context) error {
	var req registerStoreRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	address, err := req.Address.toDomain()
	if err != nil {
		return fail(ctx, err)
	}

	catalog := make([]store.Service, 0, len(req.Services))
	for _, serviceReq := range req.Services {
		service, serviceErr := serviceFromRequest(serviceReq)
		if serviceErr != nil {
			return fail(ctx, serviceErr)
		}
		catalog = append(catalog, service)
	}

	storeID := kernel.NewUUID()
	cmd, err := commands.NewCreateStoreCommand(commands.CreateStoreCommandParams{
		StoreID:  storeID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  address,
		Services: catalog,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "store registered", echo.Map{"id": storeID.String()})
}

// RegisterPartner handles POST /api/v1/partners. New partners start
// unapproved and unavailable; an admin must approve them before they can go
// on shift.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var req registerPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(
		partnerID, req.Name, req.Phone, req.Email, req.Password, req.VehicleType)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "delivery partner registered", echo.Map{"id": partnerID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	userID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("storeId", err))
	}

	pickupAddress, err := req.PickupAddress.toDomain()
	if err != nil {
		return fail(ctx, err)
	}
	deliveryAddress, err := req.DeliveryAddress.toDomain()
	if err != nil {
		return fail(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return fail(ctx, err)
	}

	lines := make([]services.RequestedLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		line, lineErr := lineFromRequest(lineReq)
		if lineErr != nil {
			return fail(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderCommandParams{
		OrderID:         orderID,
		UserID:          userID,
		StoreID:         storeID,
		Lines:           lines,
		PickupAddress:   pickupAddress,
		DeliveryAddress: deliveryAddress,
		PickupDate:      req.PickupDate,
		PaymentMethod:   paymentMethod,
		Notes:           req.Notes,
		PromoCode:       req.PromoCode,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "order placed", echo.Map{"id": orderID.String()})
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	result, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	feed := make([]echo.Map, 0, len(result))
	for _, row := range result {
		feed = append(feed, echo.Map{
			"id":            row.ID.String(),
			"storeName":     row.StoreName,
			"userName":      row.UserName,
			"totalAmount":   row.TotalAmount,
			"pickupAddress": row.PickupAddressText,
			"pickupDate":    row.PickupDate,
			"createdAt":     row.CreatedAt,
		})
	}

	return ok(ctx, http.StatusOK, "available orders", feed)
}

// AcceptOrder handles POST /api/v1/orders/:orderId/accept. Exactly one
// partner can win a claim; losers get 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	partnerID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, partnerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "order accepted", nil)
}

// AdvanceOrder handles POST /api/v1/orders/:orderId/advance.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	actorID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	var req advanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	action, err := commands.AdvanceActionFromString(req.Action)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actorID, action)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "order advanced", nil)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	actorID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	actorRole, err := user.RoleFromString(principal.Role)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("role", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, actorRole)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "order cancelled", nil)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	storeID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, storeID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "order deleted", nil)
}

// GetOrderDetail handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	storeID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderDetailQuery(orderID, storeID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	items := make([]echo.Map, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, echo.Map{
			"serviceName": item.ServiceName,
			"quantity":    item.Quantity,
			"price":       item.Price,
			"subtotal":    item.Subtotal,
		})
	}

	return ok(ctx, http.StatusOK, "order detail", echo.Map{
		"id":                  result.ID.String(),
		"userName":            result.UserName,
		"deliveryPartnerName": result.DeliveryPartnerName,
		"status":              result.Status,
		"paymentStatus":       result.PaymentStatus,
		"paymentMethod":       result.PaymentMethod,
		"discountAmount":      result.DiscountAmount,
		"totalAmount":         result.TotalAmount,
		"pickupAddress":       result.PickupAddressText,
		"deliveryAddress":     result.DeliveryAddressText,
		"pickupDate":          result.PickupDate,
		"deliveryDate":        result.DeliveryDate,
		"notes":               result.Notes,
		"items":               items,
	})
}

// GetStoreOrders handles GET /api/v1/stores/me/orders.
func (s *Server) GetStoreOrders(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	storeID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	query, err := queries.NewGetStoreOrdersQuery(storeID, ctx.QueryParam("status"))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]echo.Map, 0, len(result))
	for _, row := range result {
		orders = append(orders, echo.Map{
			"id":            row.ID.String(),
			"userName":      row.UserName,
			"status":        row.Status,
			"paymentStatus": row.PaymentStatus,
			"totalAmount":   row.TotalAmount,
			"pickupDate":    row.PickupDate,
			"createdAt":     row.CreatedAt,
		})
	}

	return ok(ctx, http.StatusOK, "store orders", orders)
}

// GetNearbyStores handles GET /api/v1/stores/nearby.
func (s *Server) GetNearbyStores(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("lat", err))
	}

	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("lng", err))
	}

	radiusKm, err := strconv.ParseFloat(ctx.QueryParam("radiusKm"), 64)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("radiusKm", err))
	}

	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetNearbyStoresQuery(location, radiusKm)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getNearbyStoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	stores := make([]echo.Map, 0, len(result))
	for _, row := range result {
		stores = append(stores, echo.Map{
			"id":         row.ID.String(),
			"name":       row.Name,
			"address":    row.AddressText,
			"lat":        row.Location.Lat(),
			"lng":        row.Location.Lng(),
			"distanceKm": row.DistanceKm,
		})
	}

	return ok(ctx, http.StatusOK, "nearby stores", stores)
}

// SetPartnerAvailability handles PUT /api/v1/partners/me/availability.
func (s *Server) SetPartnerAvailability(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	partnerID, err := kernel.UUIDFromString(principal.Subject)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("subject", err))
	}

	var req availabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(partnerID, req.Available)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.setPartnerAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "availability updated", nil)
}

// ApprovePartner handles POST /api/v1/partners/:partnerId/approve.
func (s *Server) ApprovePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("partnerId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("partnerId", err))
	}

	cmd, err := commands.NewApprovePartnerCommand(partnerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.approvePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusOK, "partner approved", nil)
}

// CreatePromotion handles POST /api/v1/promotions.
func (s *Server) CreatePromotion(ctx echo.Context) error {
	var req createPromotionRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	discountType, err := promotion.DiscountTypeFromString(req.DiscountType)
	if err != nil {
		return fail(ctx, err)
	}

	promotionID := kernel.NewUUID()
	cmd, err := commands.NewCreatePromotionCommand(promotion.NewPromotionParams{
		ID:             promotionID,
		Code:           req.Code,
		Description:    req.Description,
		DiscountType:   discountType,
		DiscountValue:  req.DiscountValue,
		MaxDiscount:    req.MaxDiscount,
		MinOrderAmount: req.MinOrderAmount,
		ValidFrom:      req.ValidFrom,
		ValidTill:      req.ValidTill,
		UsageLimit:     req.UsageLimit,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createPromotionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "promotion created", echo.Map{"id": promotionID.String()})
}

// GetActivePromotions handles GET /api/v1/promotions/active.
func (s *Server) GetActivePromotions(ctx echo.Context) error {
	result, err := s.getActivePromotionsHandler.Handle(
		ctx.Request().Context(), queries.NewGetActivePromotionsQuery(time.Now()))
	if err != nil {
		return fail(ctx, err)
	}

	promotions := make([]echo.Map, 0, len(result))
	for _, row := range result {
		promotions = append(promotions, echo.Map{
			"id":             row.ID.String(),
			"code":           row.Code,
			"description":    row.Description,
			"discountType":   row.DiscountType,
			"discountValue":  row.DiscountValue,
			"maxDiscount":    row.MaxDiscount,
			"minOrderAmount": row.MinOrderAmount,
			"validTill":      row.ValidTill,
		})
	}

	return ok(ctx, http.StatusOK, "active promotions", promotions)
}

func serviceFromRequest(req serviceRequest) (store.Service, error) {
	prices := make([]store.ClothingPrice, 0, len(req.Prices))
	for _, priceReq := range req.Prices {
		clothingTypeID, err := kernel.UUIDFromString(priceReq.ClothingTypeID)
		if err != nil {
			return store.Service{}, errs.NewValueIsInvalidErrorWithCause("clothingTypeId", err)
		}
		prices = append(prices, store.ClothingPrice{
			ClothingTypeID: clothingTypeID,
			Price:          priceReq.Price,
		})
	}

	return store.NewService(kernel.NewUUID(), req.Name, req.Description, prices)
}

func lineFromRequest(req orderLineRequest) (services.RequestedLine, error) {
	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return services.RequestedLine{}, errs.NewValueIsInvalidErrorWithCause("serviceId", err)
	}

	clothingTypeID, err := kernel.UUIDFromString(req.ClothingTypeID)
	if err != nil {
		return services.RequestedLine{}, errs.NewValueIsInvalidErrorWithCause("clothingTypeId", err)
	}

	return services.RequestedLine{
		ServiceID:      serviceID,
		ClothingTypeID: clothingTypeID,
		Quantity:       req.Quantity,
	}, nil
}
