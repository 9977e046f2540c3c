package knowledge

import "github.com/farmai/assistant/internal/model"

// builtinDocuments is the static agricultural corpus bundled with the
// deployment. It is embedded once at startup and never mutated.
func builtinDocuments() []model.Document {
	return []model.Document{
		{
			ID:    "tomato-disease-management",
			Title: "Tomato Disease Management Guide",
			Content: `Common Tomato Diseases and Management.
1. Tomato Blight (Early and Late Blight): Symptoms are brown spots on leaves with concentric rings (early blight) or dark lesions with white fuzzy growth (late blight). Caused by fungal infections (Alternaria solani for early blight, Phytophthora infestans for late blight). Management: apply copper-based fungicides, ensure good air circulation, avoid overhead watering, rotate crops. Prevention: plant resistant varieties, maintain proper spacing, remove infected plant debris.
2. Tomato Mosaic Virus: Symptoms are mottled yellow and green leaves, stunted growth, reduced fruit production. Caused by viral infection spread by insects or contaminated tools. Management: remove infected plants, control insect vectors, use virus-resistant varieties. Prevention: sanitize tools, control aphids and whiteflies, avoid touching plants when wet.
3. Bacterial Wilt: Symptoms are sudden wilting of plants during hot weather and brown discoloration in stem vascular tissue. Caused by Ralstonia solanacearum. Management: remove and destroy infected plants, improve soil drainage, use resistant varieties. Prevention: crop rotation, avoid overwatering, maintain soil pH between 6.0 and 7.0.
4. Fusarium Wilt: Symptoms are yellowing of lower leaves, wilting during hot weather, brown streaks in the stem. Caused by the soil-borne fungus Fusarium oxysporum. Management: use resistant varieties, improve soil drainage, apply beneficial microorganisms. Prevention: crop rotation with non-solanaceous plants, soil solarization.`,
			Source:   "Agricultural Extension Service",
			Category: "disease_management",
			Crop:     "tomato",
		},
		{
			ID:    "rice-cultivation-practices",
			Title: "Rice Cultivation Best Practices",
			Content: `Rice Cultivation Guidelines.
1. Land Preparation: plow the field 2-3 times after harvesting the previous crop, apply organic matter (2-3 tons per hectare), level the field for uniform water distribution, and create bunds to retain water.
2. Seed Selection and Treatment: use certified seeds of high-yielding varieties, treat seeds with fungicide (Carbendazim 2g per kg of seed), soak seeds for 24 hours before sowing, use 20-25 kg of seed per hectare for direct seeding.
3. Water Management: maintain a 2-5 cm water level during the vegetative stage, increase to 5-10 cm during the reproductive stage, drain the field 15-20 days before harvest, and alternate wetting and drying for water conservation.
4. Nutrient Management: apply NPK in a 120:60:40 kg per hectare ratio. Split nitrogen application: 50% at planting, 25% at tillering, 25% at panicle initiation. Apply phosphorus and potassium as a basal dose. Use micronutrient spray if deficiency symptoms appear.
5. Pest and Disease Management: monitor for brown plant hopper, stem borer, and leaf folder. Apply integrated pest management practices, use pheromone traps for stem borer control, and spray fungicide for blast and sheath blight diseases. Planting season should match local monsoon onset; in most regions rice is planted at the start of the rainy season when soil moisture is reliable.`,
			Source:   "Rice Research Institute",
			Category: "crop_management",
			Crop:     "rice",
		},
		{
			ID:    "wheat-disease-control",
			Title: "Wheat Disease Identification and Control",
			Content: `Major Wheat Diseases.
1. Wheat Rust (Yellow, Brown, Black): rust-colored pustules on leaves and stems. Yellow rust shows yellow stripes on leaves, brown rust scattered brown pustules, black rust black pustules on stems. Management: apply fungicides such as Propiconazole and use resistant varieties. Prevention: early sowing, balanced fertilization, crop rotation.
2. Wheat Blast: bleached wheat heads and shriveled grains, caused by Magnaporthe oryzae. Management: apply fungicides at the heading stage and harvest early. Prevention: use resistant varieties, avoid late planting.
3. Powdery Mildew: white powdery growth on leaves and stems, favored by high humidity. Management: apply sulfur-based fungicides and improve air circulation. Prevention: plant resistant varieties, avoid overcrowding.
4. Septoria Leaf Spot: small brown spots with dark borders on leaves during wet conditions. Management: apply fungicides and remove crop residues. Prevention: crop rotation, avoid overhead irrigation.`,
			Source:   "Wheat Research Institute",
			Category: "disease_management",
			Crop:     "wheat",
		},
		{
			ID:    "integrated-pest-management",
			Title: "Integrated Pest Management Strategies",
			Content: `Integrated Pest Management (IPM) Principles.
1. Prevention: use resistant crop varieties, maintain crop rotation, practice good field sanitation, and time planting to avoid peak pest periods.
2. Monitoring and Identification: scout fields regularly for pests and beneficial insects, use pheromone traps for early detection, identify economic threshold levels, and keep detailed pest monitoring records.
3. Biological Control: encourage natural enemies, use beneficial insects like ladybugs and lacewings, apply microbial pesticides (Bt, NPV), and plant banker plants to support beneficials.
4. Cultural Control: adjust planting dates to avoid pest outbreaks, use trap crops to divert pests, manage irrigation properly, and remove crop residues that harbor pests.
5. Chemical Control (last resort): use selective pesticides targeting specific pests, rotate pesticides with different modes of action, follow label instructions, and apply only when the economic threshold is reached.
6. Organic Alternatives: neem oil for soft-bodied insects, diatomaceous earth for crawling insects, soap sprays for aphids and mites, and essential oil-based repellents.`,
			Source:   "IPM Guidelines",
			Category: "pest_management",
			Crop:     "general",
		},
		{
			ID:    "soil-health-management",
			Title: "Soil Health and Fertility Management",
			Content: `Soil Health Management.
1. Soil Testing: test pH, nutrient levels, and organic matter every 2-3 years or before major crops; test micronutrients if deficiency symptoms appear; keep pH between 6.0 and 7.5 for most crops.
2. Organic Matter: add compost or well-rotted manure (5-10 tons per hectare), practice green manuring with legumes, retain crop residues, and use cover crops during fallow periods.
3. Nutrient Management: follow soil test recommendations, use balanced NPK fertilizers per crop requirements, apply micronutrients (Zn, B, Fe) when deficient, and time applications to crop uptake.
4. Physical Soil Health: avoid compaction from heavy machinery, practice minimum tillage, maintain drainage to prevent waterlogging, and add organic amendments to improve water retention.
5. Biological Soil Health: encourage beneficial microorganisms, apply mycorrhizal inoculants, feed soil biology with organic fertilizers, and avoid excessive chemical pesticide use.
6. Erosion Control: plant cover crops on slopes, create terraces and contour farming on sloped land, maintain vegetation buffers near water bodies, and mulch to protect the soil surface.`,
			Source:   "Soil Science Department",
			Category: "soil_management",
			Crop:     "general",
		},
		{
			ID:    "climate-smart-agriculture",
			Title: "Climate-Smart Agriculture Practices",
			Content: `Climate-Smart Agriculture Strategies.
1. Water Conservation: drip irrigation for efficient water use, rainwater harvesting and storage, mulching to reduce evaporation, and deficit irrigation for drought tolerance.
2. Heat Stress Management: plant heat-tolerant varieties, provide shade structures for sensitive crops, adjust planting times to avoid extremes, and use cooling techniques such as misting.
3. Drought Resilience: select drought-resistant varieties, improve soil water retention with organic matter, practice conservation tillage, and implement early warning systems.
4. Flood Management: build proper drainage, plant flood-tolerant varieties in prone areas, use raised beds in flood-prone regions, and implement flood early warning systems.
5. Carbon Sequestration: practice agroforestry, use cover crops to build soil organic matter, reduce tillage, and apply compost and organic amendments.
6. Adaptation: diversify crops to spread climate risks, use weather-based crop insurance, keep planting schedules flexible, and adopt precision agriculture technologies.`,
			Source:   "Climate Change Research Center",
			Category: "climate_adaptation",
			Crop:     "general",
		},
	}
}

// fallbackDocument keeps the assistant minimally useful if every other
// source fails to load.
func fallbackDocument() model.Document {
	return model.Document{
		ID:    "agricultural-basics",
		Title: "Basic Agricultural Principles",
		Content: `Fundamental principles of agriculture include proper soil preparation, appropriate seed selection, timely planting, adequate water management, balanced nutrition, and integrated pest management. Success in farming requires understanding local climate conditions, soil characteristics, and market demands.`,
		Source:   "Agricultural Basics",
		Category: "general",
		Crop:     "general",
	}
}
