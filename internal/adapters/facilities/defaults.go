package facilities

import "arogya-dispatch-service/internal/domain"

// DefaultFacilities is the bundled Kolkata facility dataset used whenever the
// configured source is unavailable or empty.
func DefaultFacilities() []domain.Facility {
	return []domain.Facility{
		{Name: "SSKM Hospital (IPGMER)", Category: "Government Hospital", Area: "Alipore/Bhawanipore", Lat: 22.5380, Lng: 88.3538, Aliases: []string{"SSKM", "IPGMER", "PG"}, Popularity: 10},
		{Name: "NRS Medical College & Hospital", Category: "Government Hospital", Area: "Sealdah", Lat: 22.5643, Lng: 88.3680, Aliases: []string{"NRS"}, Popularity: 9},
		{Name: "R. G. Kar Medical College & Hospital", Category: "Government Hospital", Area: "Belgharia/Shyambazar", Lat: 22.6018, Lng: 88.3928, Aliases: []string{"RG Kar", "RGKAR"}, Popularity: 8},
		{Name: "Calcutta National Medical College & Hospital", Category: "Government Hospital", Area: "Park Circus", Lat: 22.5586, Lng: 88.3737, Aliases: []string{"CNMC"}, Popularity: 7},
		{Name: "M. R. Bangur Hospital", Category: "Government Hospital", Area: "Tollygunge/Jadavpur", Lat: 22.4970, Lng: 88.3620, Aliases: []string{"MR Bangur"}, Popularity: 6},
		{Name: "AMRI Hospital Dhakuria", Category: "Private Hospital", Area: "Dhakuria", Lat: 22.5039, Lng: 88.3753, Aliases: []string{"AMRI Dhakuria"}, Popularity: 8},
		{Name: "AMRI Hospital Salt Lake", Category: "Private Hospital", Area: "Salt Lake", Lat: 22.5875, Lng: 88.4210, Aliases: []string{"AMRI Salt Lake"}, Popularity: 7},
		{Name: "AMRI Hospital Mukundapur", Category: "Private Hospital", Area: "Mukundapur", Lat: 22.4930, Lng: 88.4060, Aliases: []string{"AMRI Mukundapur"}, Popularity: 6},
		{Name: "Fortis Hospital Anandapur", Category: "Private Hospital", Area: "Anandapur", Lat: 22.5204, Lng: 88.4191, Aliases: []string{"Fortis Anandapur"}, Popularity: 9},
		{Name: "Medica Superspecialty Hospital", Category: "Private Hospital", Area: "Mukundapur", Lat: 22.4955, Lng: 88.4014, Aliases: []string{"Medica"}, Popularity: 9},
		{Name: "Apollo Gleneagles Multispeciality Hospital", Category: "Private Hospital", Area: "EM Bypass/Phoolbagan", Lat: 22.5721, Lng: 88.4105, Aliases: []string{"Apollo Gleneagles", "Apollo"}, Popularity: 9},
		{Name: "Ruby General Hospital", Category: "Private Hospital", Area: "Kasba/EM Bypass", Lat: 22.5032, Lng: 88.3979, Aliases: []string{"Ruby"}, Popularity: 8},
		{Name: "Desun Hospital", Category: "Private Hospital", Area: "EM Bypass", Lat: 22.5035, Lng: 88.3697, Aliases: []string{"Desun"}, Popularity: 7},
		{Name: "Peerless Hospital", Category: "Private Hospital", Area: "Naktala/E M Bypass", Lat: 22.4847, Lng: 88.3899, Aliases: []string{"Peerless"}, Popularity: 6},
		{Name: "Woodlands Multispeciality Hospital", Category: "Private Hospital", Area: "Alipore/Mominpur", Lat: 22.5177, Lng: 88.3413, Aliases: []string{"Woodlands"}, Popularity: 7},
		{Name: "CMRI (Calcutta Medical Research Institute)", Category: "Private Hospital", Area: "Alipore", Lat: 22.5197, Lng: 88.3454, Aliases: []string{"CMRI"}, Popularity: 7},
		{Name: "Belle Vue Clinic", Category: "Private Hospital", Area: "Rawdon Street", Lat: 22.5472, Lng: 88.3564, Aliases: []string{"Bellevue"}, Popularity: 7},
		{Name: "Kothari Medical Centre", Category: "Private Hospital", Area: "Alipore", Lat: 22.5180, Lng: 88.3518, Aliases: []string{"Kothari"}, Popularity: 6},
		{Name: "Bhagirathi Neotia Woman & Child Care Centre", Category: "Maternity", Area: "Rawdon Street", Lat: 22.5630, Lng: 88.3503, Aliases: []string{"Neotia"}, Popularity: 6},
		{Name: "Institute of Neurosciences Kolkata (INK)", Category: "Speciality", Area: "Park Circus", Lat: 22.5529, Lng: 88.3660, Aliases: []string{"INK"}, Popularity: 6},
		{Name: "Charnock Hospital", Category: "Private Hospital", Area: "Jessore Road", Lat: 22.6369, Lng: 88.4387, Aliases: []string{"Charnock"}, Popularity: 5},
		{Name: "Manipal Hospitals Salt Lake (ex Columbia Asia)", Category: "Private Hospital", Area: "Salt Lake", Lat: 22.5906, Lng: 88.4147, Aliases: []string{"Manipal", "Columbia Asia"}, Popularity: 6},
		{Name: "Tata Medical Center", Category: "Cancer Centre", Area: "New Town", Lat: 22.5599, Lng: 88.4883, Aliases: []string{"TMC"}, Popularity: 8},
		{Name: "R N Tagore International Institute of Cardiac Sciences", Category: "Cardiac", Area: "Mukundapur", Lat: 22.4982, Lng: 88.4098, Aliases: []string{"RN Tagore", "Narayana"}, Popularity: 8},
		{Name: "KPC Medical College & Hospital", Category: "Teaching Hospital", Area: "Jadavpur", Lat: 22.4940, Lng: 88.3770, Aliases: []string{"KPC"}, Popularity: 6},
		{Name: "Ramakrishna Mission Seva Pratishthan (Sishumangal)", Category: "Maternity", Area: "Kalighat", Lat: 22.5163, Lng: 88.3451, Aliases: []string{"RKMSP", "Sishumangal"}, Popularity: 6},
		{Name: "Ekbalpur Nursing Home", Category: "Nursing Home", Area: "Ekbalpur", Lat: 22.5220, Lng: 88.3410, Aliases: []string{"Ekbalpur"}, Popularity: 5},
		{Name: "GD Hospital & Diabetes Institute", Category: "Speciality", Area: "Park Street", Lat: 22.5550, Lng: 88.3500, Aliases: []string{"GD Hospital"}, Popularity: 5},
		{Name: "Susrut Eye Foundation & Research", Category: "Eye", Area: "Salt Lake", Lat: 22.6010, Lng: 88.4190, Aliases: []string{"Susrut"}, Popularity: 5},
		{Name: "B. P. Poddar Hospital & Medical Research Ltd.", Category: "Private Hospital", Area: "New Alipore", Lat: 22.5775, Lng: 88.3615, Aliases: []string{"BP Poddar"}, Popularity: 5},
		{Name: "Howrah General Hospital", Category: "Government Hospital", Area: "Howrah", Lat: 22.5890, Lng: 88.3210, Aliases: []string{"Howrah Hospital"}, Popularity: 4},
		{Name: "Narayana Superspeciality Hospital, Howrah", Category: "Private Hospital", Area: "Howrah", Lat: 22.5950, Lng: 88.3220, Aliases: []string{"Narayana Howrah"}, Popularity: 5},
		{Name: "Apollo Clinic Salt Lake", Category: "Clinic", Area: "Salt Lake", Lat: 22.5860, Lng: 88.4170, Aliases: []string{"Apollo Clinic"}, Popularity: 4},
		{Name: "Apollo Clinic New Town", Category: "Clinic", Area: "New Town", Lat: 22.5750, Lng: 88.4670, Aliases: []string{"Apollo Clinic"}, Popularity: 4},
		{Name: "Calcutta Heart Clinic & Research Institute", Category: "Cardiac", Area: "Salt Lake", Lat: 22.4890, Lng: 88.3860, Aliases: []string{"Calcutta Heart"}, Popularity: 5},
		{Name: "Park Clinic", Category: "Nursing Home", Area: "Bhawanipore", Lat: 22.5385, Lng: 88.3537, Aliases: []string{"Park Clinic"}, Popularity: 4},
		{Name: "Nightingale Hospital", Category: "Nursing Home", Area: "Elgin", Lat: 22.5462, Lng: 88.3555, Aliases: []string{"Nightingale"}, Popularity: 4},
	}
}
