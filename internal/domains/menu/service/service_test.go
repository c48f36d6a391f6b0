package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"catering/config"
	otelMocks "catering/infras/otel/mocks"
	menuMocks "catering/internal/domains/menu/mocks"
	"catering/internal/domains/menu/model"
	"catering/internal/domains/menu/model/dto"
	"catering/internal/domains/menu/service"
	cacheMocks "catering/shared/cache/mocks"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

func newService(t *testing.T) (service.Menu, *menuMocks.MockMenu, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	repo := menuMocks.NewMockMenu(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(repo, cfg, redis, otelMocks.NewOtel()), repo, redis
}

func TestMenuService_Get_UsesCacheOnSecondRead(t *testing.T) {
	svc, repo, redis := newService(t)

	var cached dto.MenuItemResponse

	gomock.InOrder(
		redis.EXPECT().
			Get(gomock.Any(), "menu:get:m-1", gomock.Any()).
			Return(errors.New("redis: nil")),
		redis.EXPECT().
			Get(gomock.Any(), "menu:get:m-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*dto.MenuItemResponse)) = cached

				return nil
			}),
	)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.MenuItem{ID: "m-1", Name: "Paneer Tikka", Price: 250, Dietary: model.DietaryVeg}, nil).
		Times(1)

	saved := make(chan struct{})
	redis.EXPECT().
		Save(gomock.Any(), "menu:get:m-1", gomock.Any(), 300).
		DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
			cached = value.(dto.MenuItemResponse)
			close(saved)

			return nil
		})

	first, err := svc.Get(context.Background(), "m-1")
	require.NoError(t, err)

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("menu item was not cached")
	}

	second, err := svc.Get(context.Background(), "m-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 250.0, second.Price)
}

func TestMenuService_Get_NotFound(t *testing.T) {
	svc, repo, redis := newService(t)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MenuItem{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestMenuService_Create(t *testing.T) {
	admin := gDto.Principal{ID: "admin-1", Role: role.Admin}

	tests := []struct {
		name      string
		req       dto.CreateMenuItemRequest
		setupMock func(repo *menuMocks.MockMenu, redis *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "available by default",
			req:  dto.CreateMenuItemRequest{Name: " Biryani ", Price: 320, Category: "Main", Dietary: model.DietaryNonVeg, Tags: []string{"wedding", "wedding"}},
			setupMock: func(repo *menuMocks.MockMenu, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item model.MenuItem) error {
						assert.True(t, item.Available)
						assert.Equal(t, "Biryani", item.Name)
						assert.Equal(t, "main", item.Category)
						assert.Equal(t, []string{"wedding"}, []string(item.Tags))

						return nil
					})
				redis.EXPECT().Clear(gomock.Any(), "menu:*").Return(nil).AnyTimes()
			},
		},
		{
			name: "insert failure",
			req:  dto.CreateMenuItemRequest{Name: "Soup", Price: 80, Category: "starter", Dietary: model.DietaryVeg},
			setupMock: func(repo *menuMocks.MockMenu, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("duplicate"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newService(t)
			tt.setupMock(repo, redis)

			res, err := svc.Create(context.Background(), admin, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestMenuService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *menuMocks.MockMenu, redis *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "deleted",
			setupMock: func(repo *menuMocks.MockMenu, redis *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.MenuItem{ID: "m-1"}, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "missing",
			setupMock: func(repo *menuMocks.MockMenu, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.MenuItem{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redis := newService(t)
			tt.setupMock(repo, redis)

			err := svc.Delete(context.Background(), "m-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFilter_ToFilterGroup(t *testing.T) {
	available := true

	group := dto.Filter{Category: "Main", Tag: "wedding", Available: &available}.ToFilterGroup()
	where, args := group.GetWhereClause()

	assert.Equal(t, "(menu_items.category = :category AND :tag = ANY(menu_items.tags) AND menu_items.available = :available)", where)
	assert.Equal(t, "main", args["category"])
	assert.Equal(t, "wedding", args["tag"])
	assert.Equal(t, true, args["available"])
}
