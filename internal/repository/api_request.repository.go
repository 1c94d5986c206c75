package repository

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/db/models/postgres/public/table"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct{}

func NewApiRequestRepository() ApiRequestRepository {
	return apiRequestRepositoryHandler{}
}

func (h apiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	ar.RequestID = uuid.New()

	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns, table.APIRequest.RequestID).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
