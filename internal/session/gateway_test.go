package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchak/prodlist/internal/api"
)

// fakeListService records calls and can fail individual operations.
type fakeListService struct {
	detail      *api.ShoppingList
	detailErr   error
	mutationErr error

	listCalls   int
	addQuantity int
	toggled     map[int64]bool
	deletedItem int64
	deletedList int64
}

func (f *fakeListService) List(ctx context.Context, id int64) (*api.ShoppingList, error) {
	f.listCalls++
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeListService) AddItem(ctx context.Context, listID, productID int64, quantity int) (*api.ListItem, error) {
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.addQuantity = quantity
	return &api.ListItem{ShoppingListID: listID, ProductID: productID, Quantity: quantity}, nil
}

func (f *fakeListService) ToggleItem(ctx context.Context, itemID int64, bought bool) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	if f.toggled == nil {
		f.toggled = make(map[int64]bool)
	}
	f.toggled[itemID] = bought
	return nil
}

func (f *fakeListService) DeleteItem(ctx context.Context, itemID int64) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.deletedItem = itemID
	return nil
}

func (f *fakeListService) DeleteList(ctx context.Context, listID int64) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.deletedList = listID
	return nil
}

func TestGateway_AddItemAlwaysQuantityOne(t *testing.T) {
	svc := &fakeListService{detail: &api.ShoppingList{ID: 7, Name: "Weekend"}}
	gw := NewGateway(svc)

	list, err := gw.AddItem(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.Equal(t, 1, svc.addQuantity)
	assert.Equal(t, "Weekend", list.Name)
	assert.Equal(t, 1, svc.listCalls, "success must trigger exactly one refetch")
}

func TestGateway_ToggleBoughtRefetches(t *testing.T) {
	svc := &fakeListService{detail: &api.ShoppingList{ID: 7}}
	gw := NewGateway(svc)

	_, err := gw.ToggleBought(context.Background(), 7, 3, true)

	require.NoError(t, err)
	assert.True(t, svc.toggled[3])
	assert.Equal(t, 1, svc.listCalls)
}

func TestGateway_RemoveItemRefetches(t *testing.T) {
	svc := &fakeListService{detail: &api.ShoppingList{ID: 7}}
	gw := NewGateway(svc)

	_, err := gw.RemoveItem(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), svc.deletedItem)
	assert.Equal(t, 1, svc.listCalls)
}

func TestGateway_FailedMutationSkipsRefresh(t *testing.T) {
	svc := &fakeListService{mutationErr: errors.New("connection refused")}
	gw := NewGateway(svc)

	_, err := gw.RemoveItem(context.Background(), 7, 3)

	assert.Error(t, err)
	assert.Zero(t, svc.listCalls, "an abandoned mutation must not refetch")
	assert.Zero(t, svc.deletedItem)
}

func TestGateway_FailedAddSkipsRefresh(t *testing.T) {
	svc := &fakeListService{mutationErr: errors.New("boom")}
	gw := NewGateway(svc)

	_, err := gw.AddItem(context.Background(), 7, 42)

	assert.Error(t, err)
	assert.Zero(t, svc.listCalls)
}

func TestGateway_RefetchFailureSurfaces(t *testing.T) {
	// The mutation succeeded but the follow-up fetch did not; the caller
	// renders the error in place of content and stays on the list.
	svc := &fakeListService{detailErr: errors.New("timeout")}
	gw := NewGateway(svc)

	list, err := gw.ToggleBought(context.Background(), 7, 3, true)

	assert.Error(t, err)
	assert.Nil(t, list)
	assert.True(t, svc.toggled[3], "the mutation itself was sent")
}

func TestGateway_DeleteListDoesNotRefetch(t *testing.T) {
	svc := &fakeListService{}
	gw := NewGateway(svc)

	err := gw.DeleteList(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), svc.deletedList)
	assert.Zero(t, svc.listCalls, "deleting a list returns to Overview instead")
}
