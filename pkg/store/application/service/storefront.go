package service

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
)

var (
	ErrAddressIncomplete = errors.New("please fill all address fields")
	ErrInvalidMobile     = errors.New("please enter a valid 10-digit mobile number")
	ErrInvalidPincode    = errors.New("please enter a valid 6-digit pincode")
	ErrEmptyLocation     = errors.New("please enter a location")
)

var (
	mobilePattern  = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// Storefront coordinates the auth gate with the cart and order services.
// Add-to-cart and place-order attempted while logged out are stashed and
// replayed exactly once after a successful login. It also owns the two
// address snapshots: the display-only home address and the confirmed
// payment address required before placing an order.
type Storefront interface {
	// AddToCart adds the product, or stashes the request and reports
	// gated=true when the user is not logged in.
	AddToCart(productName string) (quantity int, gated bool, err error)
	// SelectPaymentMethod records the chosen method for the session.
	SelectPaymentMethod(method string)
	PaymentMethod() string
	// PlaceOrder places the order against the confirmed payment address,
	// or stashes the request and reports gated=true when logged out.
	PlaceOrder() (order *model.Order, gated bool, err error)

	RequestOTP(phone string) (string, error)
	// VerifyOTP logs in on a match and replays any stashed gated action.
	VerifyOTP(input string) (*model.Order, error)
	Logout() error

	// ConfirmHomeAddress accepts any non-empty free text.
	ConfirmHomeAddress(text string) error
	HomeAddress() string
	// ConfirmPaymentAddress validates all fields, the 10-digit mobile and
	// the 6-digit pincode, then snapshots the address for checkout.
	ConfirmPaymentAddress(addr model.Address) error
	ConfirmedAddress() (model.Address, bool)
	// ResetPaymentForm clears the confirmed address and selected method,
	// as the success flow does after an order lands.
	ResetPaymentForm()
}

func NewStorefront(cart service.CartService, orders service.OrderService, auth service.AuthService, dispatcher service.EventDispatcher) Storefront {
	return &storefront{cart: cart, orders: orders, auth: auth, dispatcher: dispatcher}
}

type storefront struct {
	mu         sync.Mutex
	cart       service.CartService
	orders     service.OrderService
	auth       service.AuthService
	dispatcher service.EventDispatcher

	paymentMethod    string
	homeAddress      string
	confirmedAddress *model.Address

	pendingProduct    string
	pendingPlaceOrder bool
}

func (s *storefront) AddToCart(productName string) (int, bool, error) {
	if !s.auth.LoggedIn() {
		s.mu.Lock()
		s.pendingProduct = productName
		s.mu.Unlock()
		return 0, true, nil
	}
	qty, err := s.cart.AddToCart(productName)
	return qty, false, err
}

func (s *storefront) SelectPaymentMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
}

func (s *storefront) PaymentMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

func (s *storefront) PlaceOrder() (*model.Order, bool, error) {
	if !s.auth.LoggedIn() {
		s.mu.Lock()
		s.pendingPlaceOrder = true
		s.mu.Unlock()
		return nil, true, nil
	}
	order, err := s.placeOrder()
	return order, false, err
}

func (s *storefront) placeOrder() (*model.Order, error) {
	s.mu.Lock()
	addr := s.confirmedAddress
	method := s.paymentMethod
	s.mu.Unlock()

	if addr == nil {
		return nil, service.ErrAddressNotConfirmed
	}
	order, err := s.orders.PlaceOrder(*addr, method)
	if err != nil {
		return nil, err
	}
	s.ResetPaymentForm()
	return order, nil
}

func (s *storefront) RequestOTP(phone string) (string, error) {
	return s.auth.RequestOTP(phone)
}

func (s *storefront) VerifyOTP(input string) (*model.Order, error) {
	if err := s.auth.VerifyOTP(input); err != nil {
		return nil, err
	}

	// Take the stashed actions before replaying so each fires exactly once
	// even if a replay itself fails.
	s.mu.Lock()
	product := s.pendingProduct
	placeOrder := s.pendingPlaceOrder
	s.pendingProduct = ""
	s.pendingPlaceOrder = false
	s.mu.Unlock()

	if product != "" {
		if _, err := s.cart.AddToCart(product); err != nil {
			log.WithError(err).WithField("product", product).Warn("pending add-to-cart replay failed")
		}
	}
	if placeOrder {
		order, err := s.placeOrder()
		if err != nil {
			log.WithError(err).Warn("pending place-order replay failed")
			return nil, nil
		}
		return order, nil
	}
	return nil, nil
}

func (s *storefront) Logout() error {
	return s.auth.Logout()
}

func (s *storefront) ConfirmHomeAddress(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyLocation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homeAddress = text
	return nil
}

func (s *storefront) HomeAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.homeAddress
}

func (s *storefront) ConfirmPaymentAddress(addr model.Address) error {
	if addr.Name == "" || addr.Mobile == "" || addr.House == "" || addr.Street == "" || addr.Pin == "" {
		return ErrAddressIncomplete
	}
	if !mobilePattern.MatchString(addr.Mobile) {
		return ErrInvalidMobile
	}
	if !pincodePattern.MatchString(addr.Pin) {
		return ErrInvalidPincode
	}

	s.mu.Lock()
	s.confirmedAddress = &addr
	s.mu.Unlock()

	_ = s.dispatcher.Dispatch(model.AddressConfirmed{Pin: addr.Pin})
	return nil
}

func (s *storefront) ConfirmedAddress() (model.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.confirmedAddress == nil {
		return model.Address{}, false
	}
	return *s.confirmedAddress, true
}

func (s *storefront) ResetPaymentForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmedAddress = nil
	s.paymentMethod = ""
}
