package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FootballReader --dir ../usecase --output usecase --outpkg usecasemock --filename football_reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FootballDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename football_data_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/syncrun --output domain/syncrun --outpkg syncrunmock --filename repository_mock.go
