package costing

import "github.com/shopspring/decimal"

// CostPlaces decimales del costo unitario promedio.
const CostPlaces = 2

// MovingAverageCost implementa el costo promedio ponderado del período (servicio de dominio).
// NuevoCosto = round((PrecioCompras + Existencia * CostoAnterior) / (Existencia + Compras), 2)
// Si Existencia + Compras no es positivo devuelve cero y ok=false: el costo queda en su valor por defecto.
func MovingAverageCost(inStock, previousUnitCost, purchase, totalPrice decimal.Decimal) (cost decimal.Decimal, ok bool) {
	qty := inStock.Add(purchase)
	if !qty.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	num := totalPrice.Add(previousUnitCost.Mul(inStock))
	return num.Div(qty).RoundBank(CostPlaces), true
}
