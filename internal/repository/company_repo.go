package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gestorpro/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateCNPJ = errors.New("cnpj already exists")
	ErrNotFound      = errors.New("company not found")
)

type CompanyRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{
		coll:     db.Collection("companies"),
		counters: db.Collection("counters"),
	}
}

func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "cnpj", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_cnpj"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Se já existir com outra opção, tenta dropar e recriar
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "uniq_cnpj"); dropErr != nil {
			return fmt.Errorf("drop index uniq_cnpj: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

// nextID gera o próximo id numérico via documento contador
// (findOneAndUpdate com $inc + upsert é atômico no Mongo).
func (r *CompanyRepository) nextID(ctx context.Context) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "companies"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}
	c.ID = id
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateCNPJ
		}
		return 0, err
	}
	return id, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	var c models.Company
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	var c models.Company
	err := r.coll.FindOne(ctx, bson.M{"cnpj": cnpj}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetAll lista empresas; limit 0 = sem limite. A ordenação por
// created_at é conveniência, não contrato.
func (r *CompanyRepository) GetAll(ctx context.Context, limit, skip int64) ([]models.Company, error) {
	opts := options.Find().SetSkip(skip).SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Company{}
	for cur.Next(ctx) {
		var c models.Company
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

// Update aplica só os campos presentes no patch. Complemento com ""
// é gravado (limpa o campo); nos demais o service já descartou vazios.
func (r *CompanyRepository) Update(ctx context.Context, id int64, p models.CompanyPatch) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.TradeName != nil {
		set["trade_name"] = *p.TradeName
	}
	if p.Address.Street != nil {
		set["address.street"] = *p.Address.Street
	}
	if p.Address.Number != nil {
		set["address.number"] = *p.Address.Number
	}
	if p.Address.District != nil {
		set["address.district"] = *p.Address.District
	}
	if p.Address.City != nil {
		set["address.city"] = *p.Address.City
	}
	if p.Address.State != nil {
		set["address.state"] = *p.Address.State
	}
	if p.Address.PostalCode != nil {
		set["address.postal_code"] = *p.Address.PostalCode
	}
	if p.Address.Complemento != nil {
		set["address.complemento"] = *p.Address.Complemento
	}

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateCNPJ
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
