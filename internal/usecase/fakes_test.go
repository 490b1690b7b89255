package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-reservation/internal/data/entity"
)

type memHotels struct {
	hotels map[int64]*entity.Hotel
}

func newMemHotels(ids ...int64) *memHotels {
	m := &memHotels{hotels: map[int64]*entity.Hotel{}}
	for _, id := range ids {
		m.hotels[id] = &entity.Hotel{Base: entity.Base{ID: id}, Address: fmt.Sprintf("Street %d", id)}
	}
	return m
}

func (m *memHotels) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotel.ID = int64(len(m.hotels) + 1)
	m.hotels[hotel.ID] = hotel
	return nil
}

func (m *memHotels) Update(ctx context.Context, hotel *entity.Hotel) error {
	if _, ok := m.hotels[hotel.ID]; !ok {
		return fmt.Errorf("hotel %d not found", hotel.ID)
	}
	m.hotels[hotel.ID] = hotel
	return nil
}

func (m *memHotels) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	var out []*entity.Hotel
	for _, h := range m.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (m *memHotels) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	return m.hotels[id], nil
}

type memCategories struct {
	categories []*entity.Category
}

func (m *memCategories) Create(ctx context.Context, category *entity.Category) error {
	category.ID = int64(len(m.categories) + 1)
	m.categories = append(m.categories, category)
	return nil
}

func (m *memCategories) Update(ctx context.Context, category *entity.Category) error {
	for i, c := range m.categories {
		if c.ID == category.ID && c.HotelID == category.HotelID {
			m.categories[i] = category
			return nil
		}
	}
	return fmt.Errorf("category %d not found in hotel %d", category.ID, category.HotelID)
}

func (m *memCategories) FindByHotel(ctx context.Context, hotelID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.categories {
		if c.HotelID == hotelID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) FindByHotelAndID(ctx context.Context, hotelID, id int64) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.ID == id && c.HotelID == hotelID {
			return c, nil
		}
	}
	return nil, nil
}

type memOffers struct {
	offers map[int64]*entity.Offer
	nextID int64
}

func newMemOffers() *memOffers {
	return &memOffers{offers: map[int64]*entity.Offer{}}
}

func (m *memOffers) Create(ctx context.Context, offer *entity.Offer) error {
	m.nextID++
	offer.ID = m.nextID
	m.offers[offer.ID] = offer
	return nil
}

func (m *memOffers) Update(ctx context.Context, offer *entity.Offer) error {
	existing, ok := m.offers[offer.ID]
	if !ok || existing.HotelID != offer.HotelID {
		return fmt.Errorf("offer %d not found in hotel %d", offer.ID, offer.HotelID)
	}
	m.offers[offer.ID] = offer
	return nil
}

func (m *memOffers) FindByHotelAndCategory(ctx context.Context, hotelID, categoryID int64) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for id := int64(1); id <= m.nextID; id++ {
		if o, ok := m.offers[id]; ok && o.HotelID == hotelID && o.CategoryID == categoryID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOffers) FindByID(ctx context.Context, id int64) (*entity.Offer, error) {
	return m.offers[id], nil
}

func (m *memOffers) Delete(ctx context.Context, hotelID, id int64) error {
	o, ok := m.offers[id]
	if !ok || o.HotelID != hotelID {
		return fmt.Errorf("offer %d not found in hotel %d", id, hotelID)
	}
	delete(m.offers, id)
	return nil
}

type memRooms struct {
	rooms []*entity.Room
}

func (m *memRooms) Create(ctx context.Context, room *entity.Room) error {
	room.ID = int64(len(m.rooms) + 1)
	m.rooms = append(m.rooms, room)
	return nil
}

func (m *memRooms) FindByID(ctx context.Context, hotelID, id int64) (*entity.Room, error) {
	for _, r := range m.rooms {
		if r.ID == id && r.HotelID == hotelID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memRooms) FindByHotel(ctx context.Context, hotelID, categoryID int64) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range m.rooms {
		if r.HotelID == hotelID && (categoryID == 0 || r.CategoryID == categoryID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRooms) AddBookedDates(ctx context.Context, hotelID, roomID int64, dates []time.Time) error {
	room, _ := m.FindByID(ctx, hotelID, roomID)
	if room == nil {
		return fmt.Errorf("room %d not found in hotel %d", roomID, hotelID)
	}
	for _, d := range dates {
		if !room.IsAvailable([]time.Time{d}) {
			continue
		}
		room.BookedDates = append(room.BookedDates, d)
	}
	return nil
}
