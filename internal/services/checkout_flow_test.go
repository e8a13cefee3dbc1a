package services_test

import (
	"errors"
	"testing"

	"kicktwin/internal/domain"
	"kicktwin/internal/repos"
	"kicktwin/internal/services"
)

func TestCheckoutFlow_AddCartWalkStepsPlace(t *testing.T) {
	db := memdb(t)

	cartRepo := repos.NewCartRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	notify := &nopNotifier{}
	cartSvc := services.NewCartService(cartRepo, prodRepo, notify)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo, notify)

	sid := "test-session"
	if err := cartSvc.Add(sid, 1, 42); err != nil { // 45000
		t.Fatal(err)
	}

	// premature submit is refused
	if _, err := checkoutSvc.Place(sid, domain.PaymentCard); !errors.Is(err, services.ErrNotReady) {
		t.Fatalf("want ErrNotReady before walking steps, got %v", err)
	}

	d := checkoutSvc.SubmitContact(sid, "Tester", "+7 999 000-00-00", "t@e.com")
	if d.Step != domain.StepAddress {
		t.Fatalf("want StepAddress after contact, got %v", d.Step)
	}

	// empty address keeps the step
	d = checkoutSvc.SubmitAddress(sid, "Moscow", "", domain.DeliveryExpress)
	if d.Step != domain.StepAddress {
		t.Fatalf("empty address must not advance, got %v", d.Step)
	}

	d = checkoutSvc.SubmitAddress(sid, "Moscow", "Lenina st. 1", domain.DeliveryExpress)
	if d.Step != domain.StepPayment {
		t.Fatalf("want StepPayment, got %v", d.Step)
	}

	oid, err := checkoutSvc.Place(sid, domain.PaymentInstant)
	if err != nil {
		t.Fatal(err)
	}
	if oid == "" {
		t.Fatal("no order id")
	}

	o, items, err := orderRepo.Get(oid)
	if err != nil {
		t.Fatal(err)
	}
	if o.ItemsTotal != 45000 {
		t.Fatalf("want items_total=45000, got %d", o.ItemsTotal)
	}
	if o.DeliveryFee != 1500 {
		t.Fatalf("want express fee 1500, got %d", o.DeliveryFee)
	}
	if o.Total != 46500 {
		t.Fatalf("want total=46500, got %d", o.Total)
	}
	if o.Payment != "instant" {
		t.Fatalf("want payment=instant, got %s", o.Payment)
	}
	if len(items) != 1 || items[0].Size != 42 {
		t.Fatalf("bad order items: %+v", items)
	}

	// cart cleared, draft discarded
	cv, err := cartSvc.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cv.Lines) != 0 {
		t.Fatalf("cart should be empty after placing, got %d lines", len(cv.Lines))
	}
	if d := checkoutSvc.Current(sid); d.Step != domain.StepContact {
		t.Fatalf("fresh draft expected after placing, got step %v", d.Step)
	}
}

func TestCheckoutPlaceEmptyCart(t *testing.T) {
	db := memdb(t)
	cartRepo := repos.NewCartRepo(db)
	checkoutSvc := services.NewCheckoutService(cartRepo, repos.NewOrderRepo(db), &nopNotifier{})

	sid := "test-session"
	checkoutSvc.SubmitContact(sid, "Tester", "+7 999 000-00-00", "t@e.com")
	checkoutSvc.SubmitAddress(sid, "Moscow", "Lenina st. 1", domain.DeliveryCourier)

	if _, err := checkoutSvc.Place(sid, domain.PaymentCard); !errors.Is(err, services.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutBackFromReview(t *testing.T) {
	db := memdb(t)
	checkoutSvc := services.NewCheckoutService(repos.NewCartRepo(db), repos.NewOrderRepo(db), &nopNotifier{})

	sid := "test-session"
	checkoutSvc.SubmitContact(sid, "Tester", "+7 999 000-00-00", "t@e.com")
	checkoutSvc.SubmitAddress(sid, "Moscow", "Lenina st. 1", domain.DeliveryCourier)

	d := checkoutSvc.Back(sid)
	if d.Step != domain.StepAddress {
		t.Fatalf("want StepAddress after back, got %v", d.Step)
	}
	// fields survive going back
	if d.City != "Moscow" || d.Name != "Tester" {
		t.Fatalf("draft fields lost on back: %+v", d)
	}
}
