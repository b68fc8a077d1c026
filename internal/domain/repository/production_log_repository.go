package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ProductionLogRepository puerto del historial de producciones. Solo inserción.
type ProductionLogRepository interface {
	Create(l *entity.ProductionLog) error
	// List devuelve las entradas en orden más-reciente-primero.
	List() ([]*entity.ProductionLog, error)
}
