package database

import (
	"visus-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// Seed fills empty tables with the starter content of the public site.
// Tables that already have rows are not touched.
func Seed(db *gorm.DB, log *logrus.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			doctors := []entity.Doctor{
				{
					Name:            "Айжан Ермекова",
					Role:            "Врач-офтальмолог",
					ExperienceYears: intPtr(12),
					DescriptionRu:   strPtr("Комплексная диагностика, подбор коррекции, наблюдение взрослых пациентов."),
					DescriptionKk:   strPtr("Кешенді диагностика, түзетуді таңдау, ересек пациенттерді бақылау."),
					PhotoURL:        strPtr("doctors/doctor1.jpg"),
				},
				{
					Name:            "Динара Сапарова",
					Role:            "Детский офтальмолог",
					ExperienceYears: intPtr(8),
					DescriptionRu:   strPtr("Наблюдение детей, контроль прогрессирования близорукости, мягкие линзы."),
					DescriptionKk:   strPtr("Балаларды бақылау, миопияның үдеуін бақылау, жұмсақ линзалар."),
					PhotoURL:        strPtr("doctors/doctor2.jpg"),
				},
				{
					Name:            "Алина Тлеуберді",
					Role:            "Администратор центра",
					ExperienceYears: intPtr(5),
					DescriptionRu:   strPtr("Организует запись, отвечает на вопросы по услугам и времени приёма."),
					DescriptionKk:   strPtr("Жазылуды ұйымдастырады, қызметтер және қабылдау уақыты туралы сұрақтарға жауап береді."),
					PhotoURL:        strPtr("doctors/admin.jpg"),
				},
			}
			if err := tx.Create(&doctors).Error; err != nil {
				return err
			}
			log.Infof("Seeded %d doctors", len(doctors))
		}

		if err := tx.Model(&entity.ServiceItem{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			services := []entity.ServiceItem{
				{
					Slug:               "diagnostics",
					TitleRu:            "Комплексная диагностика зрения",
					TitleKk:            "Кешенді көру диагностикасы",
					ShortDescriptionRu: strPtr("Компьютерные измерения, проверка остроты зрения, осмотр глаз."),
					ShortDescriptionKk: strPtr("Компьютерлік өлшеулер, көру өткірлігін тексеру, көзді қарау."),
					IsActive:           true,
				},
				{
					Slug:               "kids",
					TitleRu:            "Детская офтальмология",
					TitleKk:            "Балалар офтальмологиясы",
					ShortDescriptionRu: strPtr("Наблюдение детей, подбор очков и линз."),
					ShortDescriptionKk: strPtr("Балаларды бақылау, көзілдірік пен линзаларды таңдау."),
					IsActive:           true,
				},
			}
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
			log.Infof("Seeded %d services", len(services))
		}

		if err := tx.Model(&entity.Review{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			review := entity.Review{
				PatientName: "Пациент №1",
				Rating:      entity.DefaultReviewRating,
				TextRu:      strPtr("Сделали диагностику за 40 минут"),
				TextKk:      strPtr("40 минутта диагностика жасалды"),
				PosterURL:   strPtr("reviews/review1.jpg"),
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			log.Info("Seeded 1 review")
		}

		return nil
	})
}
