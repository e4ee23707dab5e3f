package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appservice "github.com/Brixomart/Brixo-mart/pkg/store/application/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
	"github.com/Brixomart/Brixo-mart/pkg/store/infrastructure/inmemory"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(service.Event) error { return nil }

var paymentAddress = model.Address{
	Name:   "Asha",
	Mobile: "9876543210",
	House:  "12B",
	Street: "MG Road",
	Pin:    "560001",
}

func setup(t *testing.T) (appservice.Storefront, service.CartService, service.OrderService, service.AuthService) {
	t.Helper()
	catalog := model.NewCatalog([]model.CatalogCategory{
		{
			Name: "Fresh Fruits",
			Products: []model.Product{
				{Name: "Shimla Apple", Price: "₹120/kg", OriginalPrice: "₹133/kg"},
			},
		},
	})

	dispatcher := nopDispatcher{}
	cart := service.NewCartService(catalog, dispatcher)
	orders := service.NewOrderService(inmemory.NewOrderRepository(), cart, dispatcher)
	auth := service.NewAuthService(inmemory.NewSessionRepository(), dispatcher)
	front := appservice.NewStorefront(cart, orders, auth, dispatcher)
	return front, cart, orders, auth
}

func login(t *testing.T, front appservice.Storefront) {
	t.Helper()
	otp, err := front.RequestOTP("9876543210")
	require.NoError(t, err)
	_, err = front.VerifyOTP(otp)
	require.NoError(t, err)
}

func TestAddToCartIsGatedWhileLoggedOut(t *testing.T) {
	front, cart, _, _ := setup(t)

	qty, gated, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	assert.True(t, gated)
	assert.Zero(t, qty)
	assert.Empty(t, cart.Lines(), "nothing is added before login")
}

func TestPendingAddToCartReplaysExactlyOnce(t *testing.T) {
	front, cart, _, _ := setup(t)

	_, gated, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	require.True(t, gated)

	login(t, front)

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 1, cart.Lines()[0].Quantity, "the stashed add fires once")

	// A later login cycle must not fire it again.
	require.NoError(t, front.Logout())
	login(t, front)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestWrongOTPDoesNotReplay(t *testing.T) {
	front, cart, _, auth := setup(t)

	_, gated, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	require.True(t, gated)

	otp, err := front.RequestOTP("9876543210")
	require.NoError(t, err)
	wrong := "0000"
	if wrong == otp {
		wrong = "0001"
	}
	_, err = front.VerifyOTP(wrong)
	assert.ErrorIs(t, err, service.ErrInvalidOTP)
	assert.False(t, auth.LoggedIn())
	assert.Empty(t, cart.Lines())
}

func TestPendingPlaceOrderReplaysAfterLogin(t *testing.T) {
	front, _, orders, _ := setup(t)

	login(t, front)
	_, gated, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	require.False(t, gated)
	require.NoError(t, front.ConfirmPaymentAddress(paymentAddress))
	front.SelectPaymentMethod("UPI")
	require.NoError(t, front.Logout())

	_, gated, err = front.PlaceOrder()
	require.NoError(t, err)
	require.True(t, gated, "place-order is stashed while logged out")

	otp, err := front.RequestOTP("9876543210")
	require.NoError(t, err)
	order, err := front.VerifyOTP(otp)
	require.NoError(t, err)
	require.NotNil(t, order, "the stashed place-order fires on login")

	placed, err := orders.Orders()
	require.NoError(t, err)
	assert.Len(t, placed, 1)
}

func TestPlaceOrderRequiresConfirmedAddress(t *testing.T) {
	front, _, _, _ := setup(t)
	login(t, front)
	_, _, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	front.SelectPaymentMethod("UPI")

	_, gated, err := front.PlaceOrder()
	assert.False(t, gated)
	assert.ErrorIs(t, err, service.ErrAddressNotConfirmed)
}

func TestPlaceOrderResetsPaymentForm(t *testing.T) {
	front, _, _, _ := setup(t)
	login(t, front)
	_, _, err := front.AddToCart("Shimla Apple")
	require.NoError(t, err)
	require.NoError(t, front.ConfirmPaymentAddress(paymentAddress))
	front.SelectPaymentMethod("UPI")

	order, gated, err := front.PlaceOrder()
	require.NoError(t, err)
	require.False(t, gated)
	require.NotNil(t, order)
	assert.Equal(t, "UPI", order.PaymentMethod)

	_, confirmed := front.ConfirmedAddress()
	assert.False(t, confirmed, "address snapshot cleared after success")
	assert.Empty(t, front.PaymentMethod())
}

func TestConfirmPaymentAddressValidation(t *testing.T) {
	front, _, _, _ := setup(t)

	t.Run("all fields required", func(t *testing.T) {
		addr := paymentAddress
		addr.Street = ""
		assert.ErrorIs(t, front.ConfirmPaymentAddress(addr), appservice.ErrAddressIncomplete)
	})

	t.Run("mobile must be 10 digits", func(t *testing.T) {
		addr := paymentAddress
		addr.Mobile = "12345"
		assert.ErrorIs(t, front.ConfirmPaymentAddress(addr), appservice.ErrInvalidMobile)
	})

	t.Run("pin must be 6 digits", func(t *testing.T) {
		addr := paymentAddress
		addr.Pin = "56000"
		assert.ErrorIs(t, front.ConfirmPaymentAddress(addr), appservice.ErrInvalidPincode)
	})

	t.Run("valid address is snapshotted", func(t *testing.T) {
		require.NoError(t, front.ConfirmPaymentAddress(paymentAddress))
		got, ok := front.ConfirmedAddress()
		require.True(t, ok)
		assert.Equal(t, paymentAddress, got)
	})
}

func TestConfirmHomeAddress(t *testing.T) {
	front, _, _, _ := setup(t)

	assert.ErrorIs(t, front.ConfirmHomeAddress("   "), appservice.ErrEmptyLocation)

	require.NoError(t, front.ConfirmHomeAddress("Koramangala, Bengaluru"))
	assert.Equal(t, "Koramangala, Bengaluru", front.HomeAddress())
}
