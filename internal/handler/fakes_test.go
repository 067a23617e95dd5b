package handler_test

import (
	"context"
	"io"

	"github.com/snapvault/snapvault-go/internal/media"
	"github.com/snapvault/snapvault-go/internal/model"
	"github.com/snapvault/snapvault-go/internal/repository"
)

type fakeUserStore struct {
	users  []model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore { return &fakeUserStore{nextID: 1} }

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Mail == user.Mail {
			return repository.ErrDuplicateMail
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *fakeUserStore) GetByMail(_ context.Context, mail string) (*model.User, error) {
	for _, u := range s.users {
		if u.Mail == mail {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.users...), nil
}

type fakeImageStore struct {
	images []model.Image
	nextID int64
}

func newFakeImageStore() *fakeImageStore { return &fakeImageStore{nextID: 1} }

func (s *fakeImageStore) Create(_ context.Context, img *model.Image) error {
	img.ID = s.nextID
	s.nextID++
	s.images = append(s.images, *img)
	return nil
}

func (s *fakeImageStore) GetByID(_ context.Context, id int64) (*model.Image, error) {
	for _, img := range s.images {
		if img.ID == id {
			found := img
			return &found, nil
		}
	}
	return nil, repository.ErrImageNotFound
}

func (s *fakeImageStore) List(_ context.Context, limit, offset int) ([]model.Image, error) {
	desc := make([]model.Image, 0, len(s.images))
	for i := len(s.images) - 1; i >= 0; i-- {
		desc = append(desc, s.images[i])
	}
	if offset >= len(desc) {
		return nil, nil
	}
	desc = desc[offset:]
	if len(desc) > limit {
		desc = desc[:limit]
	}
	return desc, nil
}

func (s *fakeImageStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.images)), nil
}

type fakeTransformationStore struct {
	rows   []model.Transformation
	nextID int64
}

func newFakeTransformationStore() *fakeTransformationStore {
	return &fakeTransformationStore{nextID: 1}
}

func (s *fakeTransformationStore) Create(_ context.Context, tf *model.Transformation) error {
	tf.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *tf)
	return nil
}

func (s *fakeTransformationStore) ListByImage(_ context.Context, imageID int64) ([]model.Transformation, error) {
	var history []model.Transformation
	for _, tf := range s.rows {
		if tf.ImageID == imageID {
			history = append(history, tf)
		}
	}
	return history, nil
}

type fakeMediaStore struct{}

func (fakeMediaStore) Upload(_ context.Context, _ io.Reader, filename string) (*media.UploadResult, error) {
	return &media.UploadResult{
		URL:      "https://cdn.example.com/demo/" + filename,
		PublicID: "demo/" + filename,
		Format:   "jpg",
		Width:    800,
		Height:   600,
	}, nil
}

func (fakeMediaStore) TransformURL(publicID, transformation string) (string, error) {
	if transformation == "" {
		return "https://cdn.example.com/" + publicID, nil
	}
	return "https://cdn.example.com/" + transformation + "/" + publicID, nil
}
