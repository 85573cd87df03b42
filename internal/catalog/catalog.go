// Package catalog holds the static service catalogue: every category the
// company offers and the selectable components under each. Built once at
// init and treated as read-only reference data.
package catalog

import "github.com/bytewave/siteapi/internal/domain"

var categories = []domain.ServiceCategory{
	{
		Title:       "Device Repair",
		Description: "Professional repair for phones, laptops, tablets, and game consoles.",
		Components: []domain.ServiceComponent{
			{ID: "micro-soldering", Name: "Micro Soldering", Description: "Logic board and FPC connector repair"},
			{ID: "backlight-repair", Name: "Backlight Circuit Repair", Description: "Screen backlight troubleshooting"},
			{ID: "laptop-repair", Name: "Laptop Repair", Description: "Complete laptop diagnostics and repair"},
			{ID: "phone-repair", Name: "Phone Repair", Description: "Screen, battery, and component replacement"},
			{ID: "console-repair", Name: "Game Console Repair", Description: "PlayStation, Xbox, Nintendo repairs"},
			{ID: "tablet-repair", Name: "Tablet Repair", Description: "Screen and component replacement"},
		},
	},
	{
		Title:       "Custom Software Development",
		Description: "Tailored software solutions for web, desktop, and backend systems.",
		Components: []domain.ServiceComponent{
			{ID: "web-app", Name: "Web Application", Description: "Custom web application development"},
			{ID: "desktop-app", Name: "Desktop Application", Description: "Cross-platform desktop software"},
			{ID: "api-development", Name: "API Development", Description: "RESTful API and microservices"},
			{ID: "database-design", Name: "Database Design", Description: "Custom database architecture"},
			{ID: "software-integration", Name: "Software Integration", Description: "Third-party system integration"},
		},
	},
	{
		Title:       "Mobile App Development",
		Description: "Native and cross-platform mobile applications.",
		Components: []domain.ServiceComponent{
			{ID: "ios-app", Name: "iOS App Development", Description: "Native iOS application"},
			{ID: "android-app", Name: "Android App Development", Description: "Native Android application"},
			{ID: "cross-platform", Name: "Cross-Platform App", Description: "React Native or Flutter app"},
			{ID: "app-maintenance", Name: "App Maintenance", Description: "Ongoing app support and updates"},
			{ID: "app-store-optimization", Name: "App Store Optimization", Description: "ASO and publishing support"},
		},
	},
	{
		Title:       "Cloud Solutions",
		Description: "Cloud migration, infrastructure, and monitoring.",
		Components: []domain.ServiceComponent{
			{ID: "cloud-migration", Name: "Cloud Migration", Description: "Move existing systems to cloud"},
			{ID: "cloud-setup", Name: "Cloud Infrastructure Setup", Description: "AWS, Azure, or GCP setup"},
			{ID: "cloud-monitoring", Name: "Cloud Monitoring", Description: "24/7 cloud infrastructure monitoring"},
			{ID: "backup-solutions", Name: "Backup Solutions", Description: "Automated cloud backup systems"},
			{ID: "load-balancing", Name: "Load Balancing", Description: "High availability configuration"},
		},
	},
	{
		Title:       "Data Recovery",
		Description: "Recovery from failed drives, phones, and RAID arrays.",
		Components: []domain.ServiceComponent{
			{ID: "hdd-recovery", Name: "Hard Drive Recovery", Description: "Mechanical and logical HDD recovery"},
			{ID: "ssd-recovery", Name: "SSD Recovery", Description: "Solid state drive data recovery"},
			{ID: "phone-data-recovery", Name: "Phone Data Recovery", Description: "Mobile device data extraction"},
			{ID: "raid-recovery", Name: "RAID Recovery", Description: "RAID array reconstruction"},
			{ID: "emergency-recovery", Name: "Emergency Recovery", Description: "24-hour rush data recovery"},
		},
	},
	{
		Title:       "Cybersecurity",
		Description: "Security assessment, hardening, and incident response.",
		Components: []domain.ServiceComponent{
			{ID: "security-audit", Name: "Security Audit", Description: "Comprehensive security assessment"},
			{ID: "penetration-testing", Name: "Penetration Testing", Description: "Ethical hacking and vulnerability testing"},
			{ID: "firewall-setup", Name: "Firewall Configuration", Description: "Network firewall implementation"},
			{ID: "security-training", Name: "Security Training", Description: "Employee security awareness training"},
			{ID: "incident-response", Name: "Incident Response", Description: "Security incident handling plan"},
		},
	},
	{
		Title:       "Data Analytics",
		Description: "Dashboards, BI, and predictive analytics.",
		Components: []domain.ServiceComponent{
			{ID: "dashboard-development", Name: "Dashboard Development", Description: "Custom analytics dashboards"},
			{ID: "data-visualization", Name: "Data Visualization", Description: "Interactive charts and reports"},
			{ID: "business-intelligence", Name: "Business Intelligence", Description: "BI system implementation"},
			{ID: "data-modeling", Name: "Data Modeling", Description: "Data warehouse design"},
			{ID: "predictive-analytics", Name: "Predictive Analytics", Description: "Machine learning models"},
		},
	},
	{
		Title:       "Drone Repairs",
		Description: "Repair and maintenance for consumer and commercial drones.",
		Components: []domain.ServiceComponent{
			{ID: "motor-replacement", Name: "Motor Replacement", Description: "Drone motor repair and replacement"},
			{ID: "flight-controller", Name: "Flight Controller Repair", Description: "FC diagnostics and repair"},
			{ID: "gimbal-repair", Name: "Gimbal Repair", Description: "Camera gimbal stabilization repair"},
			{ID: "battery-service", Name: "Battery Service", Description: "Battery testing and replacement"},
			{ID: "firmware-update", Name: "Firmware Update", Description: "Drone firmware upgrade service"},
		},
	},
	{
		Title:       "Digital Marketing",
		Description: "SEO, paid advertising, social media, and content.",
		Components: []domain.ServiceComponent{
			{ID: "seo-optimization", Name: "SEO Optimization", Description: "Search engine optimization campaign"},
			{ID: "ppc-management", Name: "PPC Management", Description: "Google Ads and social media ads"},
			{ID: "social-media", Name: "Social Media Marketing", Description: "Social media strategy and management"},
			{ID: "content-creation", Name: "Content Creation", Description: "Blog posts, articles, and copywriting"},
			{ID: "email-marketing", Name: "Email Marketing", Description: "Email campaign design and automation"},
		},
	},
	{
		Title:       "IT Support",
		Description: "Helpdesk, on-site support, and network administration.",
		Components: []domain.ServiceComponent{
			{ID: "helpdesk-support", Name: "Helpdesk Support", Description: "24/7 remote IT support"},
			{ID: "on-site-support", Name: "On-Site Support", Description: "Technical support at your location"},
			{ID: "network-setup", Name: "Network Setup", Description: "Business network configuration"},
			{ID: "system-monitoring", Name: "System Monitoring", Description: "Proactive system health monitoring"},
			{ID: "software-installation", Name: "Software Installation", Description: "Software deployment and configuration"},
		},
	},
	{
		Title:       "Graphics Design",
		Description: "Logos, brand identity, business cards, and brochures.",
		Components: []domain.ServiceComponent{
			{ID: "logo-design", Name: "Logo Design", Description: "Custom logo and brand identity"},
			{ID: "business-cards", Name: "Business Cards", Description: "Professional business card design"},
			{ID: "brochure-design", Name: "Brochure Design", Description: "Marketing brochure and flyer design"},
			{ID: "web-graphics", Name: "Web Graphics", Description: "Website graphics and banners"},
			{ID: "brand-package", Name: "Complete Brand Package", Description: "Full brand identity package"},
		},
	},
}

// Categories returns all service categories in display order
func Categories() []domain.ServiceCategory {
	return categories
}

// FindCategory returns the category with the given title
func FindCategory(title string) (*domain.ServiceCategory, bool) {
	for i := range categories {
		if categories[i].Title == title {
			return &categories[i], true
		}
	}
	return nil, false
}

// FindComponent returns a component by id within a category
func FindComponent(categoryTitle, id string) (*domain.ServiceComponent, bool) {
	cat, ok := FindCategory(categoryTitle)
	if !ok {
		return nil, false
	}
	for i := range cat.Components {
		if cat.Components[i].ID == id {
			return &cat.Components[i], true
		}
	}
	return nil, false
}

// FindComponentByID searches every category for a component id.
// Returns the component and its owning category title.
func FindComponentByID(id string) (*domain.ServiceComponent, string, bool) {
	for i := range categories {
		for j := range categories[i].Components {
			if categories[i].Components[j].ID == id {
				return &categories[i].Components[j], categories[i].Title, true
			}
		}
	}
	return nil, "", false
}
