package repository

import "interest-agent/domain"

type ProjectionRepository interface {
	Save(kind string, result domain.InterestResult) error
	List() []domain.ProjectionRecord
}
