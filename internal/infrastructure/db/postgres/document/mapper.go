package document

import (
	domain "taxdocs-api/internal/domain/document"
)

func fromDBModel(model *Document) *domain.Document {
	var d = &domain.Document{
		UUID:         model.UUID,
		Category:     domain.Category(model.Category),
		Amount:       model.Amount,
		DocumentName: model.DocumentName,
		FilePath:     model.FilePath,
		TaxYear:      model.TaxYear,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return d
}

func fromDBModels(models *Documents) domain.Documents {
	ds := make(domain.Documents, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBModel(d)
	}

	return ds
}
