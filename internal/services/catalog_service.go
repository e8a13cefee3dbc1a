package services

import (
	"kicktwin/internal/domain"
	"kicktwin/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// KindCounts back the "Originals (3) / Replicas (3)" filter bar.
type KindCounts struct {
	Originals int
	Replicas  int
}

func (s *CatalogService) List(kind domain.Kind) ([]domain.Product, error) {
	return s.Prods.List(kind)
}

func (s *CatalogService) Counts() (KindCounts, error) {
	orig, err := s.Prods.CountByKind(domain.KindOriginal)
	if err != nil {
		return KindCounts{}, err
	}
	repl, err := s.Prods.CountByKind(domain.KindReplica)
	if err != nil {
		return KindCounts{}, err
	}
	return KindCounts{Originals: orig, Replicas: repl}, nil
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Search(q string, kind domain.Kind, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Prods.Search(q, kind, limit)
}
