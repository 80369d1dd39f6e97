package business

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func TestListQuery_NoFilters(t *testing.T) {
	query, args, err := listQuery(domain.BusinessFilter{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM businesses WHERE is_active = $1 ORDER BY name ASC")
	assert.Equal(t, []interface{}{true}, args)
}

func TestListQuery_AllFilters(t *testing.T) {
	query, args, err := listQuery(domain.BusinessFilter{
		Search:   ptr.Ptr("50%_cut"),
		Category: ptr.Ptr("barbershop"),
		MinPrice: ptr.Ptr(2),
		MaxPrice: ptr.Ptr(3),
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query,
		"WHERE is_active = $1 AND name ILIKE $2 AND category = $3 AND price_range >= $4 AND price_range <= $5 ORDER BY name ASC")
	assert.Equal(t, []interface{}{true, `%50\%\_cut%`, "barbershop", 2, 3}, args)
}

func TestListQuery_EmptyStringsIgnored(t *testing.T) {
	query, _, err := listQuery(domain.BusinessFilter{Search: ptr.Ptr(""), Category: ptr.Ptr("")}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "ILIKE")
	assert.NotContains(t, query, "category =")
}

func TestUpdateQuery_AlwaysBumpsUpdatedAt(t *testing.T) {
	id := uuid.New()

	query, args, err := updateQuery(id, domain.BusinessUpdate{Name: ptr.Ptr("Fade Studio")}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE businesses SET name = $1, updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []string{"Fade Studio", id.String()}, argStrings(args))
}

// argStrings приводит аргументы запроса к строкам: squirrel.Eq раскрывает driver.Valuer (uuid) в строку
func argStrings(args []interface{}) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprint(a)
	}
	return out
}
