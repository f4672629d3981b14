package services

import (
	"context"
	"errors"
	"testing"

	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

func newFeesService(repo *mockRepository, publisher events.EventPublisher) FeesService {
	return NewFeesService(repo, testLogger(), validator.NewBusinessValidator(), publisher)
}

func TestCreateFeesDerivesTotal(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := newFeesService(repo, publisher)

	fees, err := service.Create(context.Background(), &FeesRequest{
		StudentName: "Asha Verma",
		RollNumber:  "R-100",
		Department:  "Science",
		TuitionFees: 1200.50,
		HostelFees:  800,
		MessFees:    300.25,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if fees.TotalFees != 2300.75 {
		t.Errorf("TotalFees = %v, want 2300.75", fees.TotalFees)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventFeesUpdated {
		t.Errorf("expected one %s event, got %+v", events.EventFeesUpdated, published)
	}
}

func TestCreateFeesRejectsDuplicateRollNumber(t *testing.T) {
	repo := newMockRepository()
	repo.fees.ledger = []*models.StudentFees{{ID: 1, RollNumber: "R-100"}}
	service := newFeesService(repo, events.NewMockEventPublisher(testLogger()))

	_, err := service.Create(context.Background(), &FeesRequest{
		StudentName: "Asha Verma",
		RollNumber:  "R-100",
		Department:  "Science",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}
}

func TestCreateFeesRejectsNegativeAmounts(t *testing.T) {
	service := newFeesService(newMockRepository(), events.NewMockEventPublisher(testLogger()))

	_, err := service.Create(context.Background(), &FeesRequest{
		StudentName: "Asha Verma",
		RollNumber:  "R-100",
		Department:  "Science",
		TuitionFees: -50,
	})

	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Rule != "fee_amount" {
		t.Errorf("rule = %q, want fee_amount", verrs[0].Rule)
	}
}

func TestUpdateFeesRecomputesTotal(t *testing.T) {
	repo := newMockRepository()
	repo.fees.ledger = []*models.StudentFees{
		{ID: 1, StudentName: "Asha", RollNumber: "R-100", Department: "Science", TuitionFees: 1000, TotalFees: 1000},
	}
	service := newFeesService(repo, events.NewMockEventPublisher(testLogger()))

	fees, err := service.Update(context.Background(), 1, &FeesRequest{
		StudentName: "Asha",
		RollNumber:  "R-100",
		Department:  "Science",
		TuitionFees: 1000,
		HostelFees:  500,
		MessFees:    250,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if fees.TotalFees != 1750 {
		t.Errorf("TotalFees = %v, want 1750", fees.TotalFees)
	}
}

func TestGetFeesByRollNumber(t *testing.T) {
	repo := newMockRepository()
	repo.fees.ledger = []*models.StudentFees{
		{ID: 1, StudentName: "Asha", RollNumber: "R-100", Department: "Science", TotalFees: 1700},
		{ID: 2, StudentName: "Ravi", RollNumber: "R-200", Department: "Arts", TotalFees: 1200},
	}
	service := newFeesService(repo, events.NewMockEventPublisher(testLogger()))

	fees, err := service.GetByRollNumber(context.Background(), "R-200")
	if err != nil {
		t.Fatalf("GetByRollNumber failed: %v", err)
	}
	if fees.ID != 2 || fees.StudentName != "Ravi" {
		t.Errorf("got %+v, want Ravi's record", fees)
	}

	if _, err := service.GetByRollNumber(context.Background(), "R-404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown roll number: got %v, want ErrNotFound", err)
	}
}

func TestGetFeesNotFound(t *testing.T) {
	service := newFeesService(newMockRepository(), events.NewMockEventPublisher(testLogger()))

	if _, err := service.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
