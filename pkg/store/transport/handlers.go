package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	appservice "github.com/Brixomart/Brixo-mart/pkg/store/application/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/geo"
)

type Handler struct {
	catalog    *model.Catalog
	viewRouter service.ViewRouter
	cart       service.CartService
	wishlist   service.WishlistService
	orders     service.OrderService
	auth       service.AuthService
	storefront appservice.Storefront

	homePicker    *geo.AddressPicker
	paymentPicker *geo.AddressPicker
}

// Router builds the HTTP surface over the storefront services.
func Router(
	catalog *model.Catalog,
	viewRouter service.ViewRouter,
	cart service.CartService,
	wishlist service.WishlistService,
	orders service.OrderService,
	auth service.AuthService,
	storefront appservice.Storefront,
	homePicker, paymentPicker *geo.AddressPicker,
) http.Handler {
	h := &Handler{
		catalog:       catalog,
		viewRouter:    viewRouter,
		cart:          cart,
		wishlist:      wishlist,
		orders:        orders,
		auth:          auth,
		storefront:    storefront,
		homePicker:    homePicker,
		paymentPicker: paymentPicker,
	}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/catalog", h.listCategories).Methods(http.MethodGet)
	s.HandleFunc("/catalog/{category}", h.listProducts).Methods(http.MethodGet)

	s.HandleFunc("/page", h.currentPage).Methods(http.MethodGet)
	s.HandleFunc("/page", h.navigate).Methods(http.MethodPost)
	s.HandleFunc("/page/back", h.goBack).Methods(http.MethodPost)
	s.HandleFunc("/page/forward", h.goForward).Methods(http.MethodPost)

	s.HandleFunc("/cart", h.getCart).Methods(http.MethodGet)
	s.HandleFunc("/cart/items", h.addToCart).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{name}/increase", h.increaseQty).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{name}/decrease", h.decreaseQty).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{name}", h.removeLine).Methods(http.MethodDelete)

	s.HandleFunc("/wishlist", h.getWishlist).Methods(http.MethodGet)
	s.HandleFunc("/wishlist/toggle", h.toggleWishlist).Methods(http.MethodPost)

	s.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	s.HandleFunc("/orders", h.placeOrder).Methods(http.MethodPost)
	s.HandleFunc("/orders/{id}", h.getOrder).Methods(http.MethodGet)

	s.HandleFunc("/auth/otp", h.requestOTP).Methods(http.MethodPost)
	s.HandleFunc("/auth/verify", h.verifyOTP).Methods(http.MethodPost)
	s.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	s.HandleFunc("/auth/session", h.session).Methods(http.MethodGet)

	s.HandleFunc("/payment/method", h.selectPaymentMethod).Methods(http.MethodPost)
	s.HandleFunc("/payment/address", h.confirmPaymentAddress).Methods(http.MethodPost)
	s.HandleFunc("/home/address", h.confirmHomeAddress).Methods(http.MethodPost)

	s.HandleFunc("/locations/{scope}/suggestions", h.locationSuggestions).Methods(http.MethodGet)
	s.HandleFunc("/locations/{scope}/current", h.useCurrentLocation).Methods(http.MethodPost)
	s.HandleFunc("/locations/{scope}/marker", h.dragMarker).Methods(http.MethodPost)

	return logMiddleware(r)
}

func (h *Handler) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	products, err := h.catalog.Products(category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}

func (h *Handler) currentPage(w http.ResponseWriter, _ *http.Request) {
	route := h.viewRouter.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"route": route,
		"query": route.Query().Encode(),
	})
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var route model.Route
	if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.viewRouter.Show(route); err != nil {
		writeError(w, err)
		return
	}
	current := h.viewRouter.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"route": current,
		"query": current.Query().Encode(),
	})
}

func (h *Handler) goBack(w http.ResponseWriter, _ *http.Request) {
	route := h.viewRouter.Back()
	writeJSON(w, http.StatusOK, map[string]interface{}{"route": route})
}

func (h *Handler) goForward(w http.ResponseWriter, _ *http.Request) {
	route, moved := h.viewRouter.Forward()
	writeJSON(w, http.StatusOK, map[string]interface{}{"route": route, "moved": moved})
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":                 h.cart.Lines(),
		"count":                 h.cart.Count(),
		"totals":                h.cart.Totals(),
		"freeDeliveryRemaining": h.cart.FreeDeliveryRemaining(),
	})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	qty, gated, err := h.storefront.AddToCart(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	if gated {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"loginRequired": true,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quantity": qty,
		"totals":   h.cart.Totals(),
		"message":  req.Name + " added to cart",
	})
}

func (h *Handler) increaseQty(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	qty, err := h.cart.IncreaseQty(name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quantity": qty,
		"totals":   h.cart.Totals(),
	})
}

func (h *Handler) decreaseQty(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	qty, removed, err := h.cart.DecreaseQty(name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quantity": qty,
		"removed":  removed,
		"totals":   h.cart.Totals(),
	})
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := h.cart.RemoveLine(name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totals": h.cart.Totals(),
	})
}

func (h *Handler) getWishlist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.wishlist.Items(),
	})
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Index    int    `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.wishlist.Toggle(req.Category, req.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"added": added})
}

func (h *Handler) listOrders(w http.ResponseWriter, _ *http.Request) {
	orders, err := h.orders.Orders()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	order, err := h.orders.Order(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"order": order})
}

func (h *Handler) placeOrder(w http.ResponseWriter, _ *http.Request) {
	order, gated, err := h.storefront.PlaceOrder()
	if err != nil {
		writeError(w, err)
		return
	}
	if gated {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"loginRequired": true,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":   order,
		"message": "Order Placed Successfully with " + order.PaymentMethod,
	})
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	otp, err := h.storefront.RequestOTP(req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	// The code goes straight back to the caller; there is no real
	// verification authority in this demo.
	writeJSON(w, http.StatusOK, map[string]interface{}{"otp": otp})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OTP string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	replayed, err := h.storefront.VerifyOTP(req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := map[string]interface{}{"loggedIn": true, "phone": h.auth.Phone()}
	if replayed != nil {
		resp["order"] = replayed
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	if err := h.storefront.Logout(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false})
}

func (h *Handler) session(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": h.auth.LoggedIn(),
		"phone":    h.auth.Phone(),
	})
}

func (h *Handler) selectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.storefront.SelectPaymentMethod(req.Method)
	writeJSON(w, http.StatusOK, map[string]interface{}{"method": req.Method})
}

func (h *Handler) confirmPaymentAddress(w http.ResponseWriter, r *http.Request) {
	var addr model.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.storefront.ConfirmPaymentAddress(addr); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Address Saved!"})
}

func (h *Handler) confirmHomeAddress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.storefront.ConfirmHomeAddress(req.Text); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"address": req.Text})
}

func (h *Handler) picker(r *http.Request) *geo.AddressPicker {
	if mux.Vars(r)["scope"] == "payment" {
		return h.paymentPicker
	}
	return h.homePicker
}

func (h *Handler) locationSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions, err := h.picker(r).Lookup(r.Context(), query)
	if err != nil {
		// Lookup failures degrade to an empty list for the user.
		log.WithError(err).WithField("query", query).Warn("location lookup failed")
		writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": []geo.Suggestion{}})
		return
	}
	if suggestions == nil {
		suggestions = []geo.Suggestion{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (h *Handler) useCurrentLocation(w http.ResponseWriter, r *http.Request) {
	place, err := h.picker(r).UseCurrentLocation(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"message": geo.LocateMessage(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"place": place})
}

func (h *Handler) dragMarker(w http.ResponseWriter, r *http.Request) {
	var coord geo.Coord
	if err := json.NewDecoder(r.Body).Decode(&coord); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	place, err := h.picker(r).DragMarker(r.Context(), coord)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"message": geo.LocateMessage(err),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"place": place})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusOf(err), map[string]interface{}{
		"error": err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrCategoryNotFound),
		errors.Is(err, model.ErrLineNotFound),
		errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCartIsEmpty),
		errors.Is(err, service.ErrAddressNotConfirmed),
		errors.Is(err, service.ErrPaymentMethodMissing):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrNoPendingOTP),
		errors.Is(err, appservice.ErrAddressIncomplete),
		errors.Is(err, appservice.ErrInvalidMobile),
		errors.Is(err, appservice.ErrInvalidPincode),
		errors.Is(err, appservice.ErrEmptyLocation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
