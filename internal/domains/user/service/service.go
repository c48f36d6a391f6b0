package service

import (
	"catering/config"
	"catering/infras/otel"
	"catering/infras/s3"
	"catering/internal/domains/user/model"
	"catering/internal/domains/user/model/dto"
	"catering/internal/domains/user/repository"
	"catering/shared"
	"catering/shared/cache"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheGetAllUser = "user:gets"

var (
	errUserNotFound     = failure.NotFound("user not found")
	errCorporateOnly    = failure.BadRequestFromString("company fields are only available to corporate accounts")
	errSelfDeactivation = failure.BadRequestFromString("you cannot deactivate your own account")
	errUnknownProfile   = failure.BadRequestFromString("employee profile not found")
)

type User interface {
	GetProfile(ctx context.Context, principal gDto.Principal) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, principal gDto.Principal, req dto.UpdateProfileRequest) (dto.UserResponse, error)
	UpdateAvatar(ctx context.Context, principal gDto.Principal, req dto.UpdateAvatarRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Paginated[dto.UserResponse], error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, principal gDto.Principal, id string, req dto.AdminUpdateUserRequest) (dto.UserResponse, error)
	Deactivate(ctx context.Context, principal gDto.Principal, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3,
		otel:  otel,
	}
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, errUserNotFound
	}

	return user, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, principal gDto.Principal) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.find(ctx, principal.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, principal gDto.Principal, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.TouchesCorporateFields() && !principal.Is(role.Corporate) {
		return res, errCorporateOnly
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, principal.ID), shared.FilterByID(principal.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx)

	return s.GetProfile(ctx, principal)
}

func (s *serviceImpl) UpdateAvatar(ctx context.Context, principal gDto.Principal, req dto.UpdateAvatarRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateAvatar")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.find(ctx, principal.ID)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + filepath.Ext(req.File.Filename)

	url, err := s.s3.UploadFile(ctx, model.AvatarDirectory, fileName, req.FileData, req.File)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar")

		return res, fmt.Errorf("failed to upload avatar: %w", err)
	}

	update := shared.TransformFields(struct {
		Avatar string `db:"avatar"`
	}{url}, principal.ID)

	if err = s.repo.Update(ctx, update, shared.FilterByID(user.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to save avatar")

		return res, fmt.Errorf("failed to save avatar: %w", err)
	}

	if user.Avatar != nil {
		if key := s.s3.GetObjectKeyFromURL(*user.Avatar); key != constant.Empty {
			if err := s.s3.DeleteFile(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to remove previous avatar")
			}
		}
	}

	user.Avatar = &url
	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Paginated[dto.UserResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res = gDto.NewPaginated(dto.FromModels(users), total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, principal gDto.Principal, id string, req dto.AdminUpdateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	if id == principal.ID && req.Active != nil && !*req.Active {
		return res, errSelfDeactivation
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, principal.ID), shared.FilterByID(id, model.FieldID, model.TableName))
	if shared.IsForeignKeyViolation(err) {
		return res, errUnknownProfile
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx)

	return s.Get(ctx, id)
}

func (s *serviceImpl) Deactivate(ctx context.Context, principal gDto.Principal, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id == principal.ID {
		return errSelfDeactivation
	}

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	update := shared.TransformFields(struct {
		Active *bool `db:"active"`
	}{new(bool)}, principal.ID)

	if err = s.repo.Update(ctx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to deactivate user")

		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
}
