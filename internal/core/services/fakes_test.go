package services

import (
	"context"
	"errors"

	"creditdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory fakes for the repository and cache interfaces.

var errInsert = errors.New("insert failed")

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
	nextID    uint
	failWith  error
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: map[uint]*models.Customer{}, nextID: 1}
	for _, c := range customers {
		if c.ID == 0 {
			c.ID = repo.nextID
		}
		repo.customers[c.ID] = c
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
	}
	return repo
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*models.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByPhoneNumber(_ context.Context, phone string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.PhoneNumber == phone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	_, err := r.GetByPhoneNumber(context.Background(), phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *models.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, offset, limit int) ([]*models.Customer, int64, error) {
	var all []*models.Customer
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.customers[id]; ok {
			all = append(all, c)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeCustomerRepo) ListIDs(_ context.Context) ([]uint, error) {
	var ids []uint
	for id := uint(1); id < r.nextID; id++ {
		if _, ok := r.customers[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeLoanRepo struct {
	loans     map[uint]*models.Loan
	nextID    uint
	createErr error
	queryErr  error
}

func newFakeLoanRepo(loans ...*models.Loan) *fakeLoanRepo {
	repo := &fakeLoanRepo{loans: map[uint]*models.Loan{}, nextID: 1}
	for _, l := range loans {
		if l.ID == 0 {
			l.ID = repo.nextID
		}
		repo.loans[l.ID] = l
		if l.ID >= repo.nextID {
			repo.nextID = l.ID + 1
		}
	}
	return repo
}

func (r *fakeLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	if r.createErr != nil {
		return r.createErr
	}
	loan.ID = r.nextID
	r.nextID++
	r.loans[loan.ID] = loan
	return nil
}

func (r *fakeLoanRepo) GetByID(_ context.Context, id uint) (*models.Loan, error) {
	loan, ok := r.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return loan, nil
}

func (r *fakeLoanRepo) GetByCustomerID(_ context.Context, customerID uint) ([]*models.Loan, error) {
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	var loans []*models.Loan
	for id := uint(1); id < r.nextID; id++ {
		if l, ok := r.loans[id]; ok && l.CustomerID == customerID {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (r *fakeLoanRepo) Upsert(_ context.Context, loan *models.Loan) error {
	if loan.ID == 0 {
		return r.Create(context.Background(), loan)
	}
	r.loans[loan.ID] = loan
	if loan.ID >= r.nextID {
		r.nextID = loan.ID + 1
	}
	return nil
}

type fakeSnapshotRepo struct {
	snapshots []*models.CreditScoreSnapshot
}

func (r *fakeSnapshotRepo) Create(_ context.Context, snapshot *models.CreditScoreSnapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) LatestByCustomerID(_ context.Context, customerID uint) (*models.CreditScoreSnapshot, error) {
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		if r.snapshots[i].CustomerID == customerID {
			return r.snapshots[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeScoreCache struct {
	scores      map[uint]int
	invalidated []uint
}

func newFakeScoreCache() *fakeScoreCache {
	return &fakeScoreCache{scores: map[uint]int{}}
}

func (c *fakeScoreCache) GetScore(_ context.Context, customerID uint) (int, bool) {
	score, ok := c.scores[customerID]
	return score, ok
}

func (c *fakeScoreCache) SetScore(_ context.Context, customerID uint, score int) error {
	c.scores[customerID] = score
	return nil
}

func (c *fakeScoreCache) Invalidate(_ context.Context, customerID uint) error {
	delete(c.scores, customerID)
	c.invalidated = append(c.invalidated, customerID)
	return nil
}
