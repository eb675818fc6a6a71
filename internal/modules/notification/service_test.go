package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_AppendsUnread(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	n, err := svc.Notify(ctx, TypeNewOrder, "طلب جديد #1 بإجمالي $89.97")
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	assert.False(t, n.IsRead)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestList_NewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, err := svc.Notify(ctx, TypeNewOrder, "first")
	require.NoError(t, err)
	second, err := svc.Notify(ctx, TypeLowStock, "second")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestMarkRead_SetsFlag(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	n, err := svc.Notify(ctx, TypeOrderStatus, "تم تحديث حالة الطلب #1: مكتمل")
	require.NoError(t, err)
	require.NoError(t, svc.MarkRead(ctx, n.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)
}

func TestMarkRead_MissingIDIsSilent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	assert.NoError(t, svc.MarkRead(context.Background(), 999))
}
