package downsampling

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reduce reduz uma série ordenada de pontos a um tamanho limitado,
// preservando os extremos visuais de cada trecho. Quando len(points) é menor
// ou igual a maxPoints a série volta intacta. Caso contrário a série é
// particionada em trechos de ceil(n/maxPoints) pontos e cada trecho emite
// até quatro representantes: primeiro, mínimo, máximo e último.
//
// Os representantes saem na ordem dos papéis (primeiro, mínimo, máximo,
// último), deduplicados por índice. Isso significa que o mínimo pode ser
// emitido antes do máximo mesmo quando ocorre depois dele no tempo dentro do
// trecho. Os consumidores atuais dependem dessa ordem; não reordenar.
//
// O comprimento da saída fica entre 1 e 4×maxPoints, sempre menor que a
// entrada quando a redução é de fato aplicada.
func Reduce(points []domain.ChartPoint, maxPoints int) []domain.ChartPoint {
	if maxPoints <= 0 || len(points) <= maxPoints {
		return points
	}

	chunkSize := (len(points) + maxPoints - 1) / maxPoints

	reduced := make([]domain.ChartPoint, 0, 4*maxPoints)

	for start := 0; start < len(points); start += chunkSize {
		end := start + chunkSize
		if end > len(points) {
			end = len(points)
		}
		chunk := points[start:end]

		minIdx, maxIdx := 0, 0
		for i, p := range chunk {
			if p.Y < chunk[minIdx].Y {
				minIdx = i
			}
			if p.Y > chunk[maxIdx].Y {
				maxIdx = i
			}
		}

		emitted := make(map[int]bool, 4)
		for _, idx := range []int{0, minIdx, maxIdx, len(chunk) - 1} {
			if emitted[idx] {
				continue
			}
			emitted[idx] = true
			reduced = append(reduced, chunk[idx])
		}
	}

	return reduced
}
