// AngelaMos | 2026
// entity.go

package plant

import (
	"time"

	"github.com/lib/pq"
)

type Plant struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Price      float64        `db:"price"`
	Categories pq.StringArray `db:"categories"`
	Available  bool           `db:"available"`
	ProfileURL string         `db:"profile_url"`
	CreatedBy  string         `db:"created_by"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// DefaultProfileURL is the placeholder applied when a plant is created
// without an image.
const DefaultProfileURL = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRX7HRicGdWDIgAs9L2WZqSw-rpPd7VWrD0pvS0gQmc0hzoi9zJJA0ZEXH7aExSmGP1ZCU&usqp=CAU"
