package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

const collectionMenuItems = "menu_items"

type MenuItemRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) *MenuItemRepository {
	return &MenuItemRepository{db: db, col: db.Collection(collectionMenuItems)}
}

type menuItemDoc struct {
	ID        int64                `bson:"_id"`
	Title     string               `bson:"title"`
	Price     primitive.Decimal128 `bson:"price"`
	Inventory int                  `bson:"inventory"`
}

func toMenuItemDoc(m *domain.MenuItem) (menuItemDoc, error) {
	price, err := primitive.ParseDecimal128(m.Price.StringFixed(domain.PriceScale))
	if err != nil {
		return menuItemDoc{}, fmt.Errorf("encode price: %w", err)
	}
	return menuItemDoc{ID: m.ID, Title: m.Title, Price: price, Inventory: m.Inventory}, nil
}

func (d menuItemDoc) toDomain() (*domain.MenuItem, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return nil, fmt.Errorf("decode price of menu item %d: %w", d.ID, err)
	}
	return &domain.MenuItem{ID: d.ID, Title: d.Title, Price: price, Inventory: d.Inventory}, nil
}

func (r *MenuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]*domain.MenuItem, 0)
	for cur.Next(ctx) {
		var doc menuItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		item, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, cur.Err()
}

// Create assigns the next menu item id and inserts the document.
func (r *MenuItemRepository) Create(ctx context.Context, m *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionMenuItems)
	if err != nil {
		return err
	}
	m.ID = id

	doc, err := toMenuItemDoc(m)
	if err != nil {
		return err
	}
	_, err = r.col.InsertOne(ctx, doc)
	return err
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc menuItemDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return doc.toDomain()
}

func (r *MenuItemRepository) Update(ctx context.Context, m *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMenuItemDoc(m)
	if err != nil {
		return err
	}
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}
