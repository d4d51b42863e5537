package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/costeo-api/internal/domain"
	"github.com/jhoicas/costeo-api/internal/domain/repository"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// InventoryItemUseCase consultas y borrado de insumos.
type InventoryItemUseCase struct {
	items        repository.InventoryItemRepository
	consumptions repository.PeriodicConsumptionRepository
}

// NewInventoryItemUseCase construye el caso de uso.
func NewInventoryItemUseCase(
	items repository.InventoryItemRepository,
	consumptions repository.PeriodicConsumptionRepository,
) *InventoryItemUseCase {
	return &InventoryItemUseCase{items: items, consumptions: consumptions}
}

// Names nombres de insumos sin repetir, ordenados alfabéticamente en español.
func (uc *InventoryItemUseCase) Names(ctx context.Context) ([]string, error) {
	names, err := uc.items.ListDistinctNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar nombres de insumos: %w", err)
	}
	return sortSpanish(names), nil
}

// Groups códigos de grupo sin repetir, ordenados.
func (uc *InventoryItemUseCase) Groups(ctx context.Context) ([]string, error) {
	groups, err := uc.items.ListDistinctGroupCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar grupos de insumos: %w", err)
	}
	return sortSpanish(groups), nil
}

// Delete elimina un insumo. Se rechaza si algún registro de consumo lo referencia.
func (uc *InventoryItemUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("obtener insumo: %w", err)
	}
	if item == nil {
		return domain.ErrNotFound
	}
	used, err := uc.consumptions.ExistsForInventoryItem(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar uso del insumo: %w", err)
	}
	if used {
		return &domain.ValidationError{
			Message: fmt.Sprintf("no se puede eliminar %q: está en uso en un consumo periódico", item.Name),
			Kind:    domain.ErrInventoryItemInUse,
		}
	}
	return uc.items.Delete(ctx, id)
}

func sortSpanish(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	collate.New(language.Spanish, collate.IgnoreCase).SortStrings(out)
	return out
}
