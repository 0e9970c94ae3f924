package store

import (
	"time"

	"ticket_reseller/constants"
	"ticket_reseller/helper"
	"ticket_reseller/model"

	"github.com/google/uuid"
)

// RegisterSeller files a new seller application. Applications always start
// pending; activation is a back-office concern outside this core.
func (s *Store) RegisterSeller(input model.RegisterSellerInput) model.Seller {
	seller := model.Seller{
		ID:        "SLR-" + uuid.New().String()[:8],
		Username:  input.Username,
		ShopName:  input.ShopName,
		Status:    constants.SELLER_PENDING,
		CreatedAt: time.Now(),
	}

	s.accountsMu.Lock()
	s.sellers = append(s.sellers, seller)
	s.accountsMu.Unlock()

	return seller
}

func (s *Store) Sellers() []model.Seller {
	s.accountsMu.RLock()
	defer s.accountsMu.RUnlock()
	return append([]model.Seller(nil), s.sellers...)
}

func (s *Store) SubAccounts() []model.SubAccount {
	s.accountsMu.RLock()
	defer s.accountsMu.RUnlock()
	return append([]model.SubAccount(nil), s.subAccounts...)
}

func (s *Store) AddSubAccount(input model.CreateSubAccountInput) (model.SubAccount, error) {
	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return model.SubAccount{}, err
	}

	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	account := model.SubAccount{
		ID:       s.nextSubAccountID,
		Username: input.Username,
		Password: hashed,
		Status:   constants.ACCOUNT_ACTIVE,
	}
	s.nextSubAccountID++
	s.subAccounts = append(s.subAccounts, account)

	return account, nil
}

// ToggleSubAccountStatus flips active <-> inactive.
func (s *Store) ToggleSubAccountStatus(id uint) (model.SubAccount, bool) {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	for i := range s.subAccounts {
		if s.subAccounts[i].ID != id {
			continue
		}
		if s.subAccounts[i].Status == constants.ACCOUNT_ACTIVE {
			s.subAccounts[i].Status = constants.ACCOUNT_INACTIVE
		} else {
			s.subAccounts[i].Status = constants.ACCOUNT_ACTIVE
		}
		return s.subAccounts[i], true
	}
	return model.SubAccount{}, false
}

// DeleteSubAccount is idempotent like ticket deletion.
func (s *Store) DeleteSubAccount(id uint) bool {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	kept := s.subAccounts[:0]
	for _, a := range s.subAccounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.subAccounts = kept
	return true
}
