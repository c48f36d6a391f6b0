package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/infras/s3"
	"catering/internal/domains/employee/model"
	"catering/internal/domains/employee/model/dto"
	"catering/internal/domains/employee/repository"
	userModel "catering/internal/domains/user/model"
	userRepo "catering/internal/domains/user/repository"
	"catering/shared"
	"catering/shared/base64"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/password"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const maxAvatarBytes = constant.MaxUploadSizeMB << 20

var (
	errEmployeeNotFound = failure.NotFound("employee not found")
	errProfileNotLinked = failure.NotFound("employee profile not linked to this account")
	errEmailTaken       = failure.BadRequestFromString("email already registered")
	errAvatarFormat     = failure.BadRequestFromString("avatar must be a png, jpeg or webp data url")
	errAvatarSize       = failure.BadRequestFromString(fmt.Sprintf("avatar must not exceed %d MB", constant.MaxUploadSizeMB))
)

type Employee interface {
	Create(ctx context.Context, principal gDto.Principal, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Paginated[dto.EmployeeResponse], error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, principal gDto.Principal, id string, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	GetProfile(ctx context.Context, principal gDto.Principal) (dto.EmployeeResponse, error)
}

type serviceImpl struct {
	repo     repository.Employee
	userRepo userRepo.User
	tx       postgres.Transactor
	s3       s3.S3
	otel     otel.Otel
}

func New(repo repository.Employee, userRepo userRepo.User, tx postgres.Transactor, s3 s3.S3, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		tx:       tx,
		s3:       s3,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, principal gDto.Principal, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee := req.ToModel(principal.ID)

	if req.Password != nil {
		exists, err := s.userRepo.Exist(ctx, userRepo.FilterByEmail(employee.Email))
		if err != nil {
			log.Error().Err(err).Msg("failed to check login email")

			return res, fmt.Errorf("failed to check login email: %w", err)
		}

		if exists {
			return res, errEmailTaken
		}
	}

	if req.Avatar != nil {
		url, err := s.uploadAvatar(ctx, *req.Avatar)
		if err != nil {
			return res, err
		}

		employee.Avatar = &url
	}

	var loginID *string

	if req.Password == nil {
		err = s.repo.Insert(ctx, employee)
	} else {
		loginID, err = s.createWithLogin(ctx, principal, req, employee)
	}

	if err != nil {
		s.discardAvatar(ctx, employee.Avatar)

		if shared.IsUniqueViolation(err) {
			return res, errEmailTaken
		}

		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	res.FromModel(employee)
	res.UserID = loginID

	return res, nil
}

func (s *serviceImpl) createWithLogin(ctx context.Context, principal gDto.Principal, req dto.CreateEmployeeRequest, employee model.Employee) (*string, error) {
	hashedPassword, err := password.Hash(*req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	login := req.ToLogin(employee, hashedPassword, principal.ID)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, employee); err != nil {
			return err
		}

		return s.userRepo.InsertTx(ctx, tx, login)
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &login.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Paginated[dto.EmployeeResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	employees, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	return gDto.NewPaginated(dto.FromModels(employees), total, params.Limit), nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Employee, error) {
	employee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get employee")

		return employee, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == "" {
		return employee, errEmployeeNotFound
	}

	return employee, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, principal gDto.Principal, id string, req dto.UpdateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	fields := shared.TransformFields(req, principal.ID)
	previous := employee.Avatar

	if req.Avatar != nil {
		url, err := s.uploadAvatar(ctx, *req.Avatar)
		if err != nil {
			return res, err
		}

		fields[model.FieldAvatar] = url
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update employee")

		return res, fmt.Errorf("failed to update employee: %w", err)
	}

	if req.Avatar != nil {
		s.discardAvatar(ctx, previous)
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.discardAvatar(ctx, employee.Avatar)

	return nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, principal gDto.Principal) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByID(principal.ID, userModel.FieldID, userModel.TableName), userModel.FieldID, userModel.FieldEmployeeProfileID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if user.EmployeeProfileID == nil {
		return res, errProfileNotLinked
	}

	res, err = s.Get(ctx, *user.EmployeeProfileID)
	if err != nil {
		return res, err
	}

	res.UserID = &user.ID

	return res, nil
}

func (s *serviceImpl) uploadAvatar(ctx context.Context, dataURL string) (string, error) {
	contentType, data, err := base64.Decode(dataURL)
	if err != nil {
		return "", errAvatarFormat
	}

	extension := base64.Extension(contentType)
	if extension == "" {
		return "", errAvatarFormat
	}

	if len(data) > maxAvatarBytes {
		return "", errAvatarSize
	}

	url, err := s.s3.UploadFileBytes(ctx, model.AvatarDirectory, uuid.NewString()+extension, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload employee avatar")

		return "", fmt.Errorf("failed to upload employee avatar: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) discardAvatar(ctx context.Context, url *string) {
	if url == nil {
		return
	}

	key := s.s3.GetObjectKeyFromURL(*url)
	if key == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove employee avatar")
	}
}
