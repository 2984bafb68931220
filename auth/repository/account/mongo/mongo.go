package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/account-service/domain"
	utilKit "github.com/superj80820/account-service/kit/util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountRepo struct {
	accountCollection *mongo.Collection
}

// CreateAccountRepo ensures a unique index on email, so a same-email
// registration race is decided by the store, not by application logic.
func CreateAccountRepo(ctx context.Context, client *mongo.Client) (domain.AccountRepo, error) {
	accountCollection := client.Database("account").Collection("account")

	_, err := accountCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create email unique index failed")
	}

	return &accountRepo{
		accountCollection: accountCollection,
	}, nil
}

func (a *accountRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.Account, error) {
	uniqueIDGenerate, err := utilKit.GetUniqueIDGenerate()
	if err != nil {
		return nil, errors.Wrap(err, "generate unique id failed")
	}

	now := time.Now()
	account := domain.Account{
		ID:        uniqueIDGenerate.Generate().GetInt64(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := a.accountCollection.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrap(domain.ErrDuplicate, "email already exists")
		}
		return nil, errors.Wrap(err, "insert account failed")
	}

	return &account, nil
}

func (a *accountRepo) Get(ctx context.Context, accountID int64) (*domain.Account, error) {
	var account domain.Account
	filter := bson.D{{Key: "account_id", Value: accountID}}
	if err := a.accountCollection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(domain.ErrNoData, "account not exist")
		}
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account, nil
}

func (a *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	filter := bson.D{{Key: "email", Value: email}}
	if err := a.accountCollection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(domain.ErrNoData, "account not exist")
		}
		return nil, errors.Wrap(err, "get account failed")
	}
	return &account, nil
}

func (a *accountRepo) Update(ctx context.Context, accountID int64, update *domain.AccountUpdate) (*domain.Account, error) {
	set := bson.D{{Key: "updated_at", Value: time.Now()}}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *update.Email})
	}
	if update.Password != nil {
		set = append(set, bson.E{Key: "password", Value: *update.Password})
	}

	filter := bson.D{{Key: "account_id", Value: accountID}}
	findOneAndUpdateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var account domain.Account
	err := a.accountCollection.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, findOneAndUpdateOpts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(domain.ErrNoData, "account not exist")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrap(domain.ErrDuplicate, "email already exists")
		}
		return nil, errors.Wrap(err, "update account failed")
	}
	return &account, nil
}

func (a *accountRepo) Delete(ctx context.Context, accountID int64) error {
	filter := bson.D{{Key: "account_id", Value: accountID}}
	result, err := a.accountCollection.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "delete account failed")
	}
	if result.DeletedCount == 0 {
		return errors.Wrap(domain.ErrNoData, "account not exist")
	}
	return nil
}
