package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_PagesOfFour(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCatalogService(fc)

	_, err := svc.ListProducts(context.Background(), "t-shirts", 0)
	require.NoError(t, err)
	assert.Equal(t, "t-shirts", fc.LastListCategory)
	assert.Equal(t, 1, fc.LastListPage)
	assert.Equal(t, PageSize, fc.LastListLimit)

	_, err = svc.ListProducts(context.Background(), "", 1)
	require.ErrorIs(t, err, common.ErrValidation)
}
