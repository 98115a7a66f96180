package commands_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/promotion"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureLapsedPromotion(t *testing.T, code string, now time.Time) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(promotion.NewPromotionParams{
		ID:            kernel.NewUUID(),
		Code:          code,
		DiscountType:  promotion.DiscountTypePercentage,
		DiscountValue: 10,
		ValidFrom:     now.Add(-48 * time.Hour),
		ValidTill:     now.Add(-time.Hour),
	})
	require.NoError(t, err)
	return p
}

func TestNewExpirePromotionsCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		now := time.Now()

		cmd, err := commands.NewExpirePromotionsCommand(now)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, now, cmd.Now())
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		_, err := commands.NewExpirePromotionsCommand(time.Time{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestExpirePromotionsCommandHandler_Handle_DeactivatesLapsed(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	first := fixtureLapsedPromotion(t, "DIWALI20", now)
	second := fixtureLapsedPromotion(t, "MONSOON15", now)
	cmd, _ := commands.NewExpirePromotionsCommand(now)

	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PromotionRepository").Return(promotionRepo).Once(),
		promotionRepo.On("GetAllActiveExpired", mock.Anything, now).
			Return([]*promotion.Promotion{first, second}, nil).Once(),
		promotionRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		promotionRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePromotionsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, first.IsActive())
	assert.False(t, second.IsActive())
	promotionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpirePromotionsCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	cmd, _ := commands.NewExpirePromotionsCommand(now)

	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PromotionRepository").Return(promotionRepo).Once()
	promotionRepo.On("GetAllActiveExpired", mock.Anything, now).
		Return([]*promotion.Promotion{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePromotionsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	promotionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpirePromotionsCommandHandler_Handle_UpdateFailureAborts(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	lapsed := fixtureLapsedPromotion(t, "DIWALI20", now)
	cmd, _ := commands.NewExpirePromotionsCommand(now)

	promotionRepo := new(MockPromotionRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PromotionRepository").Return(promotionRepo).Once()
	promotionRepo.On("GetAllActiveExpired", mock.Anything, now).
		Return([]*promotion.Promotion{lapsed}, nil).Once()
	promotionRepo.On("Update", mock.Anything, lapsed).
		Return(errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePromotionsCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
