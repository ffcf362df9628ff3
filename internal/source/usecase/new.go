package usecase

import (
	"monitor-srv/internal/source"
	"monitor-srv/internal/source/repository"
	"monitor-srv/pkg/encrypter"
	"monitor-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	enc  encrypter.Encrypter
	l    log.Logger
}

// New - Factory function
func New(l log.Logger, repo repository.PostgresRepository, enc encrypter.Encrypter) source.UseCase {
	return &implUseCase{
		repo: repo,
		enc:  enc,
		l:    l,
	}
}
